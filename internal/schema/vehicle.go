package schema

import (
	"strconv"
	"strings"
	"time"

	"github.com/boddenberg/zapay-go/internal/domain"
)

// ParseCompleteVehicle validates the vehicle record of a debts lookup:
// structural pass over the DTO, then the plate/renavam validators and the
// model-year-vs-fabrication-year rule.
func ParseCompleteVehicle(dto CompleteVehicleDTO) (domain.CompleteVehicle, error) {
	dto.Plate = strings.ToUpper(dto.Plate)
	if err := checkStruct("vehicle", dto); err != nil {
		return domain.CompleteVehicle{}, err
	}

	renavam, err := ParseRenavam(dto.Renavam)
	if err != nil {
		return domain.CompleteVehicle{}, err
	}
	plate, err := ParsePlate(dto.Plate)
	if err != nil {
		return domain.CompleteVehicle{}, err
	}

	if dto.FabricationYear != nil {
		if currentYear := time.Now().Year(); *dto.FabricationYear > currentYear {
			return domain.CompleteVehicle{}, failScalar("vehicle.fabricationYear", "lte", strconv.Itoa(*dto.FabricationYear))
		}
	}
	// A model may only be of the fabrication year or the following one.
	if dto.ModelYear != nil && dto.FabricationYear != nil {
		if *dto.ModelYear != *dto.FabricationYear && *dto.ModelYear != *dto.FabricationYear+1 {
			return domain.CompleteVehicle{}, failScalar("vehicle.modelYear", "modelYear", strconv.Itoa(*dto.ModelYear))
		}
	}

	return domain.CompleteVehicle{
		Renavam:         renavam,
		Plate:           plate,
		Document:        dto.Document,
		Owner:           dto.Owner,
		Model:           dto.Model,
		Color:           dto.Color,
		FabricationYear: dto.FabricationYear,
		ModelYear:       dto.ModelYear,
		Chassis:         dto.Chassis,
		VenalValue:      dto.VenalValue,
	}, nil
}

// SerializeCompleteVehicle is the lossless inverse of ParseCompleteVehicle.
func SerializeCompleteVehicle(v domain.CompleteVehicle) CompleteVehicleDTO {
	return CompleteVehicleDTO{
		Renavam:         SerializeRenavam(v.Renavam),
		Plate:           SerializePlate(v.Plate),
		Document:        v.Document,
		Owner:           v.Owner,
		Model:           v.Model,
		Color:           v.Color,
		FabricationYear: v.FabricationYear,
		ModelYear:       v.ModelYear,
		Chassis:         v.Chassis,
		VenalValue:      v.VenalValue,
	}
}

// ParseSimpleVehicle validates a plate-lookup record: each of the three
// fields runs through its own validator.
func ParseSimpleVehicle(dto SimpleVehicleDTO) (domain.SimpleVehicle, error) {
	dto.Plate = strings.ToUpper(dto.Plate)
	if err := checkStruct("vehicle", dto); err != nil {
		return domain.SimpleVehicle{}, err
	}

	plate, err := ParsePlate(dto.Plate)
	if err != nil {
		return domain.SimpleVehicle{}, err
	}
	renavam, err := ParseRenavam(dto.Renavam)
	if err != nil {
		return domain.SimpleVehicle{}, err
	}
	state, err := ParseState(dto.State)
	if err != nil {
		return domain.SimpleVehicle{}, err
	}

	return domain.SimpleVehicle{Plate: plate, Renavam: renavam, State: state}, nil
}

// SerializeSimpleVehicle is the inverse of ParseSimpleVehicle.
func SerializeSimpleVehicle(v domain.SimpleVehicle) SimpleVehicleDTO {
	return SimpleVehicleDTO{
		Plate:   SerializePlate(v.Plate),
		Renavam: SerializeRenavam(v.Renavam),
		State:   SerializeState(v.State),
	}
}
