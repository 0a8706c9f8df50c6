package profile

import "github.com/matthias-bs/bresser-decode/internal/scalar"

// DefaultName is the profile used when none is configured.
const DefaultName = "weather-ble-soil"

// Weather: weather sensor, battery voltage and water temperature (OneWire).
var Weather = New("weather",
	Field(scalar.WeatherBitmap, "status"),
	Field(scalar.Temperature, "air_temp_c"),
	Field(scalar.Uint8, "humidity"),
	Field(scalar.Uint16FP1, "wind_gust_meter_sec"),
	Field(scalar.Uint16FP1, "wind_avg_meter_sec"),
	Field(scalar.Uint16FP1, "wind_direction_deg"),
	Field(scalar.RawFloat, "rain_mm"),
	Field(scalar.Uint16, "battery_v"),
	Field(scalar.Temperature, "water_temp_c"),
)

// WeatherBLE adds supply voltage and a BLE indoor thermometer.
var WeatherBLE = New("weather-ble",
	Field(scalar.WeatherBLEBitmap, "status"),
	Field(scalar.Temperature, "air_temp_c"),
	Field(scalar.Uint8, "humidity"),
	Field(scalar.Uint16FP1, "wind_gust_meter_sec"),
	Field(scalar.Uint16FP1, "wind_avg_meter_sec"),
	Field(scalar.Uint16FP1, "wind_direction_deg"),
	Field(scalar.RawFloat, "rain_mm"),
	Field(scalar.Uint16, "supply_v"),
	Field(scalar.Uint16, "battery_v"),
	Field(scalar.Temperature, "water_temp_c"),
	Field(scalar.Temperature, "indoor_temp_c"),
	Field(scalar.Uint8, "indoor_humidity"),
)

// WeatherBLESoil adds a Bresser soil temperature/moisture sensor.
var WeatherBLESoil = New(DefaultName,
	Field(scalar.Bitmap, "status"),
	Field(scalar.Temperature, "air_temp_c"),
	Field(scalar.Uint8, "humidity"),
	Field(scalar.Uint16FP1, "wind_gust_meter_sec"),
	Field(scalar.Uint16FP1, "wind_avg_meter_sec"),
	Field(scalar.Uint16FP1, "wind_direction_deg"),
	Field(scalar.RawFloat, "rain_mm"),
	Field(scalar.Uint16, "supply_v"),
	Field(scalar.Uint16, "battery_v"),
	Field(scalar.Temperature, "water_temp_c"),
	Field(scalar.Temperature, "indoor_temp_c"),
	Field(scalar.Uint8, "indoor_humidity"),
	Field(scalar.Temperature, "soil_temp_c"),
	Field(scalar.Uint8, "soil_moisture"),
)

func init() {
	Register(Weather)
	Register(WeatherBLE)
	Register(WeatherBLESoil)
}
