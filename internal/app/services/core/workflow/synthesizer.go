package workflow

import (
	"fmt"
	"labportal-service/internal/app/models"
	"labportal-service/internal/pkg/constvars"
	"labportal-service/internal/pkg/exceptions"
	"math/rand"
)

// analyteSpec declares one analyte of a panel: the plausible envelope values
// are drawn from, the clinically normal band inside it, and the independent
// probability of an abnormal draw. Qualitative analytes report
// Negative/Positive instead of a number.
type analyteSpec struct {
	name         string
	unit         string
	envelopeMin  float64
	envelopeMax  float64
	normalMin    float64
	normalMax    float64
	abnormalRate float64
	decimals     int
	qualitative  bool
}

var bloodPanel = []analyteSpec{
	{name: "Hemoglobin", unit: "g/dL", envelopeMin: 8.0, envelopeMax: 20.0, normalMin: 12.0, normalMax: 16.0, abnormalRate: 0.15, decimals: 1},
	{name: "WBC", unit: "10^3/uL", envelopeMin: 2.0, envelopeMax: 20.0, normalMin: 4.5, normalMax: 11.0, abnormalRate: 0.15, decimals: 1},
	{name: "Platelets", unit: "10^3/uL", envelopeMin: 80, envelopeMax: 600, normalMin: 150, normalMax: 450, abnormalRate: 0.1, decimals: 0},
	{name: "Glucose", unit: "mg/dL", envelopeMin: 50, envelopeMax: 250, normalMin: 70, normalMax: 110, abnormalRate: 0.2, decimals: 0},
	{name: "Hematocrit", unit: "%", envelopeMin: 25, envelopeMax: 60, normalMin: 36, normalMax: 48, abnormalRate: 0.1, decimals: 1},
}

var urinalysisPanel = []analyteSpec{
	{name: "pH", unit: "", envelopeMin: 4.6, envelopeMax: 8.0, normalMin: 5.0, normalMax: 7.5, abnormalRate: 0.1, decimals: 1},
	{name: "Specific Gravity", unit: "", envelopeMin: 1.000, envelopeMax: 1.040, normalMin: 1.005, normalMax: 1.030, abnormalRate: 0.1, decimals: 3},
	{name: "Protein", qualitative: true, abnormalRate: 0.1},
	{name: "Glucose", qualitative: true, abnormalRate: 0.1},
	{name: "Leukocyte Esterase", qualitative: true, abnormalRate: 0.1},
}

var fecalPanel = []analyteSpec{
	{name: "pH", unit: "", envelopeMin: 5.5, envelopeMax: 8.5, normalMin: 6.5, normalMax: 7.5, abnormalRate: 0.1, decimals: 1},
	{name: "WBC", unit: "/HPF", envelopeMin: 0, envelopeMax: 50, normalMin: 0, normalMax: 2, abnormalRate: 0.15, decimals: 0},
	{name: "Occult Blood", qualitative: true, abnormalRate: 0.1},
	{name: "Parasites", qualitative: true, abnormalRate: 0.05},
}

func panelSpecs(testType string) ([]analyteSpec, bool) {
	switch testType {
	case constvars.TestTypeBlood:
		return bloodPanel, true
	case constvars.TestTypeUrinalysis:
		return urinalysisPanel, true
	case constvars.TestTypeFecal:
		return fecalPanel, true
	default:
		return nil, false
	}
}

// SynthesizePanel produces the result panel for one test type. It is pure:
// the same rng source yields the same panel, and every value stays inside its
// analyte's declared envelope. The aggregate flag is abnormal if any
// measurement is abnormal.
func SynthesizePanel(testType, orderCode, instrumentID string, rng *rand.Rand) (*models.ResultPanel, error) {
	specs, ok := panelSpecs(testType)
	if !ok {
		return nil, exceptions.ErrUnsupportedTestType(testType)
	}

	measurements := make([]models.Measurement, 0, len(specs))
	panelFlag := constvars.ResultFlagNormal
	for _, spec := range specs {
		m := sampleAnalyte(spec, rng)
		if m.Flag == constvars.ResultFlagAbnormal {
			panelFlag = constvars.ResultFlagAbnormal
		}
		measurements = append(measurements, m)
	}

	return &models.ResultPanel{
		OrderCode:    orderCode,
		TestType:     testType,
		InstrumentID: instrumentID,
		Measurements: measurements,
		Flag:         panelFlag,
		Status:       constvars.ResultStatusCompleted,
	}, nil
}

func sampleAnalyte(spec analyteSpec, rng *rand.Rand) models.Measurement {
	if spec.qualitative {
		value := constvars.MeasurementValueNegative
		flag := constvars.ResultFlagNormal
		if rng.Float64() < spec.abnormalRate {
			value = constvars.MeasurementValuePositive
			flag = constvars.ResultFlagAbnormal
		}
		return models.Measurement{
			Name:           spec.name,
			Value:          value,
			Unit:           spec.unit,
			ReferenceRange: constvars.MeasurementValueNegative,
			Flag:           flag,
		}
	}

	lowWidth := spec.normalMin - spec.envelopeMin
	highWidth := spec.envelopeMax - spec.normalMax

	abnormal := rng.Float64() < spec.abnormalRate && lowWidth+highWidth > 0
	var value float64
	if abnormal {
		if rng.Float64()*(lowWidth+highWidth) < lowWidth {
			value = uniform(rng, spec.envelopeMin, spec.normalMin)
		} else {
			value = uniform(rng, spec.normalMax, spec.envelopeMax)
		}
	} else {
		value = uniform(rng, spec.normalMin, spec.normalMax)
	}

	flag := constvars.ResultFlagNormal
	if abnormal {
		flag = constvars.ResultFlagAbnormal
	}
	return models.Measurement{
		Name:           spec.name,
		Value:          fmt.Sprintf("%.*f", spec.decimals, value),
		Unit:           spec.unit,
		ReferenceRange: fmt.Sprintf("%.*f - %.*f", spec.decimals, spec.normalMin, spec.decimals, spec.normalMax),
		Flag:           flag,
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
