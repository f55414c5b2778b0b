package graph

import (
	"strings"

	"brainagro/cmd/internal/domain/entity"
)

type Kind string

const (
	KindState    Kind = "state"
	KindCity     Kind = "city"
	KindProducer Kind = "producer"
	KindCrop     Kind = "crop"
	KindSeason   Kind = "season"
	KindFarm     Kind = "farm"
	KindPlanting Kind = "planting"
)

// NaturalKey is a business field that must be unique across a kind.
type NaturalKey struct {
	Field  string // name as exposed in payloads
	Column string
	Index  string // name of the unique index enforcing it
	Label  string // human name used in messages
}

// Reference is a foreign key held by a kind.
type Reference struct {
	Field  string
	Column string
	Target Kind
}

// Dependent is a kind that references another one through Column.
type Dependent struct {
	Kind   Kind
	Column string
}

type kindInfo struct {
	Table       string
	Label       string
	Model       any
	NaturalKeys []NaturalKey
	References  []Reference
}

var kinds = map[Kind]*kindInfo{
	KindState: {
		Table: "states",
		Label: "state",
		Model: &entity.State{},
		NaturalKeys: []NaturalKey{
			{Field: "name", Column: "name", Index: "uq_states_name", Label: "name"},
			{Field: "abbreviation", Column: "abbreviation", Index: "uq_states_abbreviation", Label: "abbreviation"},
		},
	},
	KindCity: {
		Table: "cities",
		Label: "city",
		Model: &entity.City{},
		NaturalKeys: []NaturalKey{
			{Field: "name", Column: "name", Index: "uq_cities_name", Label: "name"},
		},
		References: []Reference{
			{Field: "state_id", Column: "state_id", Target: KindState},
		},
	},
	KindProducer: {
		Table: "producers",
		Label: "producer",
		Model: &entity.Producer{},
		NaturalKeys: []NaturalKey{
			{Field: "tax_id", Column: "tax_id", Index: "uq_producers_tax_id", Label: "tax id"},
		},
	},
	KindCrop: {
		Table: "crops",
		Label: "crop",
		Model: &entity.Crop{},
		NaturalKeys: []NaturalKey{
			{Field: "name", Column: "name", Index: "uq_crops_name", Label: "name"},
		},
	},
	KindSeason: {
		Table: "seasons",
		Label: "season",
		Model: &entity.Season{},
		NaturalKeys: []NaturalKey{
			{Field: "year", Column: "year", Index: "uq_seasons_year", Label: "year"},
		},
	},
	KindFarm: {
		Table: "farms",
		Label: "farm",
		Model: &entity.Farm{},
		NaturalKeys: []NaturalKey{
			{Field: "name", Column: "name", Index: "uq_farms_name", Label: "name"},
		},
		References: []Reference{
			{Field: "producer_id", Column: "producer_id", Target: KindProducer},
			{Field: "city_id", Column: "city_id", Target: KindCity},
		},
	},
	KindPlanting: {
		Table: "plantings",
		Label: "planting",
		Model: &entity.Planting{},
		References: []Reference{
			{Field: "farm_id", Column: "farm_id", Target: KindFarm},
			{Field: "season_id", Column: "season_id", Target: KindSeason},
			{Field: "crop_id", Column: "crop_id", Target: KindCrop},
		},
	},
}

// order is used wherever a stable iteration over kinds is needed.
var order = []Kind{KindState, KindCity, KindProducer, KindCrop, KindSeason, KindFarm, KindPlanting}

func Kinds() []Kind {
	out := make([]Kind, len(order))
	copy(out, order)
	return out
}

// Models returns one pointer per entity kind, parents first, ready for AutoMigrate.
func Models() []any {
	models := make([]any, 0, len(order))
	for _, k := range order {
		models = append(models, kinds[k].Model)
	}
	return models
}

func (k Kind) Valid() bool {
	_, ok := kinds[k]
	return ok
}

// info never returns nil, unknown kinds get an empty description.
func (k Kind) info() *kindInfo {
	if info, ok := kinds[k]; ok {
		return info
	}
	return &kindInfo{Label: string(k)}
}

func (k Kind) Table() string {
	return k.info().Table
}

// Label is the lower case human name of the kind ("producer").
func (k Kind) Label() string {
	return k.info().Label
}

// Title is the capitalised label ("Producer").
func (k Kind) Title() string {
	l := k.info().Label
	if l == "" {
		return l
	}
	return strings.ToUpper(l[:1]) + l[1:]
}

func (k Kind) NaturalKeys() []NaturalKey {
	return k.info().NaturalKeys
}

func (k Kind) References() []Reference {
	return k.info().References
}

// Dependents lists the kinds that hold a reference to k. Deleting a row of
// k is refused while any of them still points at it.
func (k Kind) Dependents() []Dependent {
	var deps []Dependent
	for _, other := range order {
		for _, ref := range kinds[other].References {
			if ref.Target == k {
				deps = append(deps, Dependent{Kind: other, Column: ref.Column})
			}
		}
	}
	return deps
}

// KindByTable maps a table name reported by the store back to its kind.
func KindByTable(table string) (Kind, bool) {
	for _, k := range order {
		if kinds[k].Table == table {
			return k, true
		}
	}
	return "", false
}

// NaturalKeyByColumn finds the natural key of k stored in column.
func (k Kind) NaturalKeyByColumn(column string) (NaturalKey, bool) {
	for _, nk := range k.info().NaturalKeys {
		if nk.Column == column {
			return nk, true
		}
	}
	return NaturalKey{}, false
}

// NaturalKeyByIndex finds the kind and natural key enforced by the unique index name.
func NaturalKeyByIndex(index string) (Kind, NaturalKey, bool) {
	for _, k := range order {
		for _, nk := range kinds[k].NaturalKeys {
			if nk.Index == index {
				return k, nk, true
			}
		}
	}
	return "", NaturalKey{}, false
}
