package internal

import (
	"fmt"

	"prodmix/tables"
)

// LongRecord is one (region, class, year, volume) observation in long form.
type LongRecord struct {
	Region RawRecordRegion
	Class  PowertrainClass
	Year   Year
	Volume Decimal
}

func NewLongRecord(spec tables.LongRecordSpec) (LongRecord, error) {
	region, err := NewRawRecordRegion(spec.Region)
	if err != nil {
		return LongRecord{}, fmt.Errorf("invalid region: %w", err)
	}

	class, err := NewPowertrainClass(spec.Class)
	if err != nil {
		return LongRecord{}, fmt.Errorf("invalid class: %w", err)
	}

	year, err := NewYear(spec.Year)
	if err != nil {
		return LongRecord{}, fmt.Errorf("invalid year: %w", err)
	}

	volume, err := NewDecimal(spec.Volume)
	if err != nil {
		return LongRecord{}, fmt.Errorf("invalid volume: %w", err)
	}
	if volume.IsNegative() {
		return LongRecord{}, fmt.Errorf("negative volume %s", spec.Volume)
	}

	return LongRecord{
		Region: region,
		Class:  class,
		Year:   year,
		Volume: volume,
	}, nil
}

func (r LongRecord) ToSpec() tables.LongRecordSpec {
	return tables.LongRecordSpec{
		Region: r.Region.ToString(),
		Class:  r.Class.ToString(),
		Year:   r.Year.ToInt(),
		Volume: r.Volume.String(),
	}
}
