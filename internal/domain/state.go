package domain

// ============================================================
// Brazilian federative units (states)
// ============================================================

// StateKeys flags which lookup keys a state's debt search supports.
type StateKeys struct {
	Plate   bool
	Renavam bool
}

// State is one Brazilian federative unit. Available means the remote API
// currently serves debt lookups for it; unavailable states are rejected as
// input even though they exist in the registry.
type State struct {
	Abbreviation string
	FullName     string
	Available    bool
	Keys         StateKeys
}

// states is the fixed registry of all 27 federative units. Availability and
// key support mirror the remote service's coverage.
var states = []State{
	{Abbreviation: "AC", FullName: "Acre", Available: false, Keys: StateKeys{Plate: true, Renavam: true}},
	{Abbreviation: "AL", FullName: "Alagoas", Available: true, Keys: StateKeys{Plate: true, Renavam: true}},
	{Abbreviation: "AP", FullName: "Amapá", Available: false, Keys: StateKeys{Plate: true, Renavam: true}},
	{Abbreviation: "AM", FullName: "Amazonas", Available: false, Keys: StateKeys{Plate: true, Renavam: true}},
	{Abbreviation: "BA", FullName: "Bahia", Available: true, Keys: StateKeys{Plate: false, Renavam: true}},
	{Abbreviation: "CE", FullName: "Ceará", Available: true, Keys: StateKeys{Plate: true, Renavam: true}},
	{Abbreviation: "DF", FullName: "Distrito Federal", Available: true, Keys: StateKeys{Plate: true, Renavam: true}},
	{Abbreviation: "ES", FullName: "Espírito Santo", Available: true, Keys: StateKeys{Plate: true, Renavam: true}},
	{Abbreviation: "GO", FullName: "Goiás", Available: true, Keys: StateKeys{Plate: true, Renavam: true}},
	{Abbreviation: "MA", FullName: "Maranhão", Available: false, Keys: StateKeys{Plate: true, Renavam: true}},
	{Abbreviation: "MT", FullName: "Mato Grosso", Available: true, Keys: StateKeys{Plate: true, Renavam: true}},
	{Abbreviation: "MS", FullName: "Mato Grosso do Sul", Available: true, Keys: StateKeys{Plate: true, Renavam: true}},
	{Abbreviation: "MG", FullName: "Minas Gerais", Available: true, Keys: StateKeys{Plate: true, Renavam: true}},
	{Abbreviation: "PA", FullName: "Pará", Available: false, Keys: StateKeys{Plate: true, Renavam: true}},
	{Abbreviation: "PB", FullName: "Paraíba", Available: true, Keys: StateKeys{Plate: true, Renavam: true}},
	{Abbreviation: "PR", FullName: "Paraná", Available: true, Keys: StateKeys{Plate: true, Renavam: true}},
	{Abbreviation: "PE", FullName: "Pernambuco", Available: false, Keys: StateKeys{Plate: true, Renavam: true}},
	{Abbreviation: "PI", FullName: "Piauí", Available: true, Keys: StateKeys{Plate: true, Renavam: true}},
	{Abbreviation: "RJ", FullName: "Rio de Janeiro", Available: true, Keys: StateKeys{Plate: true, Renavam: true}},
	{Abbreviation: "RN", FullName: "Rio Grande do Norte", Available: true, Keys: StateKeys{Plate: true, Renavam: true}},
	{Abbreviation: "RS", FullName: "Rio Grande do Sul", Available: true, Keys: StateKeys{Plate: true, Renavam: true}},
	{Abbreviation: "RO", FullName: "Rondônia", Available: false, Keys: StateKeys{Plate: true, Renavam: true}},
	{Abbreviation: "RR", FullName: "Roraima", Available: false, Keys: StateKeys{Plate: true, Renavam: true}},
	{Abbreviation: "SC", FullName: "Santa Catarina", Available: true, Keys: StateKeys{Plate: true, Renavam: true}},
	{Abbreviation: "SP", FullName: "São Paulo", Available: true, Keys: StateKeys{Plate: true, Renavam: true}},
	{Abbreviation: "SE", FullName: "Sergipe", Available: false, Keys: StateKeys{Plate: true, Renavam: true}},
	{Abbreviation: "TO", FullName: "Tocantins", Available: false, Keys: StateKeys{Plate: true, Renavam: true}},
}

var statesByAbbreviation = func() map[string]State {
	m := make(map[string]State, len(states))
	for _, s := range states {
		m[s.Abbreviation] = s
	}
	return m
}()

// LookupState finds a state by its 2-letter abbreviation. The caller is
// expected to uppercase the input; an unknown abbreviation is a hard miss,
// there is no default state.
func LookupState(abbreviation string) (State, bool) {
	s, ok := statesByAbbreviation[abbreviation]
	return s, ok
}

// AvailableStates returns the states currently served by the remote API,
// in registry order.
func AvailableStates() []State {
	out := make([]State, 0, len(states))
	for _, s := range states {
		if s.Available {
			out = append(out, s)
		}
	}
	return out
}
