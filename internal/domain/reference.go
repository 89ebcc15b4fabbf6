package domain

// ReferencePeriod is the period class of a period-over-period comparison.
type ReferencePeriod string

const (
	PeriodWoW ReferencePeriod = "wow"
	PeriodMoM ReferencePeriod = "mom"
	PeriodQoQ ReferencePeriod = "qoq"
	PeriodYoY ReferencePeriod = "yoy"
)

// ReferenceMode is the presentation class of a comparison: the raw
// prior-period value, the absolute delta, or the percentage delta.
type ReferenceMode string

const (
	ModeValue        ReferenceMode = "value"
	ModeDelta        ReferenceMode = "delta"
	ModeDeltaPercent ReferenceMode = "delta_percent"
)

// Reference requests a period-over-period comparison tied to a selected date
// dimension.
type Reference struct {
	Dimension string
	Period    ReferencePeriod
	Mode      ReferenceMode
}

// WoW returns a week-over-week reference on the given dimension.
func WoW(dimension string) Reference {
	return Reference{Dimension: dimension, Period: PeriodWoW, Mode: ModeValue}
}

// MoM returns a month-over-month reference on the given dimension.
func MoM(dimension string) Reference {
	return Reference{Dimension: dimension, Period: PeriodMoM, Mode: ModeValue}
}

// QoQ returns a quarter-over-quarter reference on the given dimension.
func QoQ(dimension string) Reference {
	return Reference{Dimension: dimension, Period: PeriodQoQ, Mode: ModeValue}
}

// YoY returns a year-over-year reference on the given dimension.
func YoY(dimension string) Reference {
	return Reference{Dimension: dimension, Period: PeriodYoY, Mode: ModeValue}
}

// Delta returns a copy of the reference presented as an absolute delta.
func (r Reference) Delta() Reference {
	r.Mode = ModeDelta
	return r
}

// Percent returns a copy of the reference presented as a percentage delta.
func (r Reference) Percent() Reference {
	r.Mode = ModeDeltaPercent
	return r
}

// Key encodes period and presentation class as the reference key consumed by
// downstream renderers: "wow", "wow_d", "wow_p", and so on.
func (r Reference) Key() string {
	key := string(r.Period)
	switch r.Mode {
	case ModeDelta:
		key += "_d"
	case ModeDeltaPercent:
		key += "_p"
	}
	return key
}
