package internal

import (
	"fmt"
	"strings"

	"prodmix/tables"
)

// Year bounds for forecast volume columns. Anything outside this range in
// a header is treated as a non-year column, and anything outside it in a
// record is rejected.
const (
	MinYear = 2000
	MaxYear = 2037
)

type Year int

func NewYear(value int) (Year, error) {
	if value < MinYear || value > MaxYear {
		return 0, fmt.Errorf("year %d outside forecast range [%d, %d]", value, MinYear, MaxYear)
	}
	return Year(value), nil
}

func (y Year) ToInt() int {
	return int(y)
}

type RawRecordRegion struct {
	value string
}

func NewRawRecordRegion(value string) (RawRecordRegion, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return RawRecordRegion{}, fmt.Errorf("region is required")
	}
	return RawRecordRegion{value: trimmed}, nil
}

func (r RawRecordRegion) ToString() string {
	return r.value
}

// RawRecord is one vehicle-production line item. FuelType and Category may
// be empty (the source cell was blank); classification treats empty labels
// as matching nothing.
type RawRecord struct {
	Region   RawRecordRegion
	FuelType string
	Category string
	Volumes  map[Year]Decimal
}

func NewRawRecord(spec tables.RawRecordSpec) (RawRecord, error) {
	region, err := NewRawRecordRegion(spec.Region)
	if err != nil {
		return RawRecord{}, fmt.Errorf("invalid region: %w", err)
	}

	volumes := make(map[Year]Decimal, len(spec.Volumes))
	for yearValue, volumeValue := range spec.Volumes {
		year, err := NewYear(yearValue)
		if err != nil {
			return RawRecord{}, fmt.Errorf("invalid volume year: %w", err)
		}

		volume, err := NewDecimal(volumeValue)
		if err != nil {
			return RawRecord{}, fmt.Errorf("invalid volume for year %d: %w", yearValue, err)
		}
		if volume.IsNegative() {
			return RawRecord{}, fmt.Errorf("negative volume %s for year %d", volumeValue, yearValue)
		}
		volumes[year] = volume
	}

	return RawRecord{
		Region:   region,
		FuelType: strings.TrimSpace(spec.FuelType),
		Category: strings.TrimSpace(spec.Category),
		Volumes:  volumes,
	}, nil
}

func (r RawRecord) ToSpec() tables.RawRecordSpec {
	volumes := make(map[int]string, len(r.Volumes))
	for year, volume := range r.Volumes {
		volumes[year.ToInt()] = volume.String()
	}
	return tables.RawRecordSpec{
		Region:   r.Region.ToString(),
		FuelType: r.FuelType,
		Category: r.Category,
		Volumes:  volumes,
	}
}
