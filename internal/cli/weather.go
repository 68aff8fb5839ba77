package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jordanhale/taskdeck/internal/models"
)

var weatherCmd = &cobra.Command{
	Use:   "weather",
	Short: "Weather commands",
}

var weatherGetCmd = &cobra.Command{
	Use:   "get [location]",
	Short: "Show current weather (default London)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWeatherGet,
}

var forecastDays int

var weatherForecastCmd = &cobra.Command{
	Use:   "forecast [location]",
	Short: "Show a multi-day forecast (default London)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWeatherForecast,
}

func init() {
	weatherForecastCmd.Flags().IntVar(&forecastDays, "days", 5, "number of days (1-7)")

	weatherCmd.AddCommand(weatherGetCmd)
	weatherCmd.AddCommand(weatherForecastCmd)
}

func locationArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "London"
}

func runWeatherGet(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}

	w, cached, err := e.weather.Current(locationArg(args))
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Weather for " + w.Location))
	printReading(w)
	if cached {
		fmt.Println(subtleStyle.Render("(cached)"))
	}
	return nil
}

func runWeatherForecast(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}

	location := locationArg(args)
	forecast, err := e.weather.Forecast(location, forecastDays)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("%d-day forecast for %s", len(forecast), location)))
	for _, day := range forecast {
		fmt.Printf("%s  %5.1f°C  %-13s wind %.0f km/h\n",
			day.Timestamp.Format("Mon 2006-01-02"),
			day.Temperature,
			day.Condition.Label(),
			day.WindSpeed,
		)
	}
	return nil
}

func printReading(w *models.Weather) {
	fmt.Printf("Condition:   %s\n", w.Condition.Label())
	fmt.Printf("Temperature: %.1f°C (%.1f°F)\n", w.Temperature, w.TemperatureFahrenheit())
	fmt.Printf("Humidity:    %.0f%%\n", w.Humidity)
	fmt.Printf("Wind:        %.0f km/h\n", w.WindSpeed)
	fmt.Printf("Pressure:    %.0f hPa\n", w.Pressure)
	fmt.Printf("Visibility:  %.0f km\n", w.Visibility)
	if w.GoodForOutdoors() {
		fmt.Println(successStyle.Render("Good conditions for outdoor tasks."))
	}
}
