package internal

import (
	"fmt"

	"prodmix/tables"
)

type PowertrainClass struct {
	value string
}

func NewPowertrainClass(value string) (PowertrainClass, error) {
	switch value {
	case tables.ClassEV, tables.ClassHEV, tables.ClassICE, tables.ClassUnclassified:
		return PowertrainClass{value: value}, nil
	}
	return PowertrainClass{}, fmt.Errorf("unknown powertrain class %q", value)
}

func (c PowertrainClass) ToString() string {
	return c.value
}

// Rank orders classes for presentation: EV, HEV, ICE, UNCLASSIFIED.
func (c PowertrainClass) Rank() int {
	switch c.value {
	case tables.ClassEV:
		return 0
	case tables.ClassHEV:
		return 1
	case tables.ClassICE:
		return 2
	default:
		return 3
	}
}

var (
	ClassEV           = PowertrainClass{value: tables.ClassEV}
	ClassHEV          = PowertrainClass{value: tables.ClassHEV}
	ClassICE          = PowertrainClass{value: tables.ClassICE}
	ClassUnclassified = PowertrainClass{value: tables.ClassUnclassified}
)

// ClassifiedRecord is a raw record with its assigned powertrain class.
type ClassifiedRecord struct {
	Region   RawRecordRegion
	FuelType string
	Category string
	Class    PowertrainClass
	Volumes  map[Year]Decimal
}

func NewClassifiedRecord(spec tables.ClassifiedRecordSpec) (ClassifiedRecord, error) {
	raw, err := NewRawRecord(tables.RawRecordSpec{
		Region:   spec.Region,
		FuelType: spec.FuelType,
		Category: spec.Category,
		Volumes:  spec.Volumes,
	})
	if err != nil {
		return ClassifiedRecord{}, err
	}

	class, err := NewPowertrainClass(spec.Class)
	if err != nil {
		return ClassifiedRecord{}, fmt.Errorf("invalid class: %w", err)
	}

	return ClassifiedRecord{
		Region:   raw.Region,
		FuelType: raw.FuelType,
		Category: raw.Category,
		Class:    class,
		Volumes:  raw.Volumes,
	}, nil
}

func (r ClassifiedRecord) ToSpec() tables.ClassifiedRecordSpec {
	volumes := make(map[int]string, len(r.Volumes))
	for year, volume := range r.Volumes {
		volumes[year.ToInt()] = volume.String()
	}
	return tables.ClassifiedRecordSpec{
		Region:   r.Region.ToString(),
		FuelType: r.FuelType,
		Category: r.Category,
		Class:    r.Class.ToString(),
		Volumes:  volumes,
	}
}
