package schema_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/boddenberg/zapay-go/internal/schema"
)

func validCompleteVehicleDTO() schema.CompleteVehicleDTO {
	return schema.CompleteVehicleDTO{
		Renavam: "00194483649",
		Plate:   "ABC1D23",
	}
}

func TestParseCompleteVehicle_RoundTrip(t *testing.T) {
	dto := validCompleteVehicleDTO()
	dto.Document = strPtr("12345678901")
	dto.Owner = strPtr("Jose A Silva")
	dto.Model = strPtr("Gol 1.0")
	dto.Color = strPtr("Prata")
	dto.FabricationYear = intPtr(2019)
	dto.ModelYear = intPtr(2020)
	dto.Chassis = strPtr("9BWZZZ377VT004251")
	dto.VenalValue = strPtr("35000.00")

	vehicle, err := schema.ParseCompleteVehicle(dto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	back := schema.SerializeCompleteVehicle(vehicle)
	if !reflect.DeepEqual(back, dto) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", back, dto)
	}
}

func TestParseCompleteVehicle_OptionalAbsenceSurvives(t *testing.T) {
	vehicle, err := schema.ParseCompleteVehicle(validCompleteVehicleDTO())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vehicle.Owner != nil || vehicle.FabricationYear != nil || vehicle.ModelYear != nil {
		t.Errorf("expected absent optionals to stay nil, got %+v", vehicle)
	}

	back := schema.SerializeCompleteVehicle(vehicle)
	if !reflect.DeepEqual(back, validCompleteVehicleDTO()) {
		t.Errorf("expected optionals to stay absent, got %+v", back)
	}
}

func TestParseCompleteVehicle_PlateCanonicalized(t *testing.T) {
	dto := validCompleteVehicleDTO()
	dto.Plate = "abc1d23"

	vehicle, err := schema.ParseCompleteVehicle(dto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(vehicle.Plate) != "ABC1D23" {
		t.Errorf("expected canonical plate, got %q", vehicle.Plate)
	}
}

func TestParseCompleteVehicle_ModelYearRule(t *testing.T) {
	// Same year and fabrication+1 are the only legal model years.
	for _, modelYear := range []int{2019, 2020} {
		dto := validCompleteVehicleDTO()
		dto.FabricationYear = intPtr(2019)
		dto.ModelYear = intPtr(modelYear)
		if _, err := schema.ParseCompleteVehicle(dto); err != nil {
			t.Errorf("expected model year %d to be accepted: %v", modelYear, err)
		}
	}

	for _, modelYear := range []int{2018, 2021} {
		dto := validCompleteVehicleDTO()
		dto.FabricationYear = intPtr(2019)
		dto.ModelYear = intPtr(modelYear)
		_, err := schema.ParseCompleteVehicle(dto)
		assertValidationError(t, err, "vehicle.modelYear", "modelYear")
	}
}

func TestParseCompleteVehicle_ModelYearWithoutFabricationYear(t *testing.T) {
	// The cross-field rule only applies when both years are present.
	dto := validCompleteVehicleDTO()
	dto.ModelYear = intPtr(2020)

	if _, err := schema.ParseCompleteVehicle(dto); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseCompleteVehicle_Rejections(t *testing.T) {
	dto := validCompleteVehicleDTO()
	dto.Renavam = "00194483640"
	_, err := schema.ParseCompleteVehicle(dto)
	assertValidationError(t, err, "vehicle.renavam", "renavam")

	dto = validCompleteVehicleDTO()
	dto.Plate = "ABC123"
	_, err = schema.ParseCompleteVehicle(dto)
	assertValidationError(t, err, "plate", "brplate")

	dto = validCompleteVehicleDTO()
	dto.FabricationYear = intPtr(time.Now().Year() + 1)
	_, err = schema.ParseCompleteVehicle(dto)
	assertValidationError(t, err, "vehicle.fabricationYear", "lte")

	dto = validCompleteVehicleDTO()
	dto.FabricationYear = intPtr(1850)
	_, err = schema.ParseCompleteVehicle(dto)
	assertValidationError(t, err, "vehicle.fabricationYear", "gte")

	dto = validCompleteVehicleDTO()
	dto.Document = strPtr("123")
	_, err = schema.ParseCompleteVehicle(dto)
	assertValidationError(t, err, "vehicle.document", "brdocument")
}

func TestParseSimpleVehicle_RoundTrip(t *testing.T) {
	dto := schema.SimpleVehicleDTO{
		Plate:   "abc1234",
		Renavam: "00194483649",
		State:   "sp",
	}

	vehicle, err := schema.ParseSimpleVehicle(dto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	back := schema.SerializeSimpleVehicle(vehicle)
	want := schema.SimpleVehicleDTO{Plate: "ABC1234", Renavam: "00194483649", State: "SP"}
	if back != want {
		t.Errorf("expected canonical round trip %+v, got %+v", want, back)
	}
}

func TestParseSimpleVehicle_Rejections(t *testing.T) {
	valid := schema.SimpleVehicleDTO{Plate: "ABC1234", Renavam: "00194483649", State: "SP"}

	dto := valid
	dto.Renavam = "123"
	_, err := schema.ParseSimpleVehicle(dto)
	assertValidationError(t, err, "vehicle.renavam", "renavam")

	dto = valid
	dto.State = "ZZ"
	_, err = schema.ParseSimpleVehicle(dto)
	assertValidationError(t, err, "state", "oneof")

	// Unavailable state on a lookup response is rejected like any input.
	dto = valid
	dto.State = "TO"
	_, err = schema.ParseSimpleVehicle(dto)
	assertValidationError(t, err, "state", "oneof")
}
