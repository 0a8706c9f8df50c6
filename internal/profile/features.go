package profile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/matthias-bs/bresser-decode/internal/scalar"
)

// Firmware feature flags that influence the uplink layout.
const (
	FeatureSensorID        = "SENSORID_EN"
	FeatureOneWire         = "ONEWIRE_EN"
	FeatureSleep           = "SLEEP_EN"
	FeatureTheengsDecoder  = "THEENGSDECODER_EN"
	FeatureRainData        = "RAINDATA_EN"
	FeatureSoilSensor      = "SOILSENSOR_EN"
	FeatureMiThermometer   = "MITHERMOMETER_EN"
	FeatureDistanceSensor  = "DISTANCESENSOR_EN"
	FeatureLightningSensor = "LIGHTNINGSENSOR_EN"
	FeatureADC             = "ADC_EN"
	FeaturePinADC          = "PIN_ADC_IN"
	FeaturePinADC0         = "PIN_ADC0_IN"
	FeaturePinADC1         = "PIN_ADC1_IN"
	FeaturePinADC2         = "PIN_ADC2_IN"
	FeaturePinADC3         = "PIN_ADC3_IN"
)

var knownFeatures = map[string]struct{}{
	FeatureSensorID: {}, FeatureOneWire: {}, FeatureSleep: {}, FeatureTheengsDecoder: {},
	FeatureRainData: {}, FeatureSoilSensor: {}, FeatureMiThermometer: {}, FeatureDistanceSensor: {},
	FeatureLightningSensor: {}, FeatureADC: {}, FeaturePinADC: {}, FeaturePinADC0: {},
	FeaturePinADC1: {}, FeaturePinADC2: {}, FeaturePinADC3: {},
}

// featureField is emitted when any of its features is enabled, or always
// when it has none.
type featureField struct {
	name     string
	decoder  scalar.Decoder
	features []string
}

// Order matches the encoder sequence of the node firmware.
var featureFields = []featureField{
	{"id", scalar.Uint32, []string{FeatureSensorID}},
	{"status_node", scalar.Bitmap, nil},
	{"status", scalar.Bitmap, nil},
	{"air_temp_c", scalar.Temperature, nil},
	{"humidity", scalar.Uint8, nil},
	{"wind_gust_meter_sec", scalar.Uint16FP1, nil},
	{"wind_avg_meter_sec", scalar.Uint16FP1, nil},
	{"wind_direction_deg", scalar.Uint16FP1, nil},
	{"rain_mm", scalar.RawFloat, nil},
	{"supply_v", scalar.Uint16, []string{FeatureADC}},
	{"battery_v", scalar.Uint16, []string{FeaturePinADC3}},
	{"water_temp_c", scalar.Temperature, []string{FeatureOneWire}},
	{"indoor_temp_c", scalar.Temperature, []string{FeatureTheengsDecoder, FeatureMiThermometer}},
	{"indoor_humidity", scalar.Uint8, []string{FeatureTheengsDecoder, FeatureMiThermometer}},
	{"soil_temp_c", scalar.Temperature, []string{FeatureSoilSensor}},
	{"soil_moisture", scalar.Uint8, []string{FeatureSoilSensor}},
	{"rain_hr", scalar.RawFloat, []string{FeatureRainData}},
	{"rain_day", scalar.RawFloat, []string{FeatureRainData}},
	{"rain_week", scalar.RawFloat, []string{FeatureRainData}},
	{"rain_mon", scalar.RawFloat, []string{FeatureRainData}},
	{"adc0_v", scalar.Uint16, []string{FeaturePinADC0}},
	{"adc1_v", scalar.Uint16, []string{FeaturePinADC1}},
	{"adc2_v", scalar.Uint16, []string{FeaturePinADC2}},
	{"distance_mm", scalar.Uint16, []string{FeatureDistanceSensor}},
	{"lightning_count", scalar.Uint16, []string{FeatureLightningSensor}},
	{"lightning_distance_km", scalar.Uint8, []string{FeatureLightningSensor}},
}

// FromFeatures builds the layout a node transmits when compiled with the
// given feature flags. Flags are matched case-insensitively; unknown flags
// are rejected.
func FromFeatures(features []string) (Profile, error) {
	enabled := make(map[string]bool, len(features))
	for _, f := range features {
		key := strings.ToUpper(strings.TrimSpace(f))
		if key == "" {
			continue
		}
		if _, ok := knownFeatures[key]; !ok {
			return Profile{}, fmt.Errorf("unknown feature %q", f)
		}
		enabled[key] = true
	}
	p := Profile{Name: featureProfileName(enabled)}
	for _, ff := range featureFields {
		if ff.enabled(enabled) {
			p.Fields = append(p.Fields, Field(ff.decoder, ff.name))
		}
	}
	return p, nil
}

func (ff featureField) enabled(set map[string]bool) bool {
	if len(ff.features) == 0 {
		return true
	}
	for _, f := range ff.features {
		if set[f] {
			return true
		}
	}
	return false
}

func featureProfileName(enabled map[string]bool) string {
	keys := make([]string, 0, len(enabled))
	for k := range enabled {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "features:" + strings.Join(keys, ",")
}
