package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"freeslot-service/internal/app/config"
	"freeslot-service/internal/app/services/core/schedule"
	"freeslot-service/internal/pkg/dto/requests"
	"freeslot-service/internal/pkg/exceptions"
	"freeslot-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const (
	envPrefix = "FREESLOTS"

	flagFile         = "file"
	flagValuePath    = "value-path"
	flagWorkdayStart = "workday-start"
	flagWorkdayEnd   = "workday-end"
	flagPretty       = "pretty"
	flagVerbose      = "verbose"
	flagVersion      = "version"
)

// Cmd computes free slots for a list of occupied intervals read from a file or stdin.
type Cmd struct {
	appVersion string
	config     *viper.Viper
}

func NewCmd(appVersion string) (*cobra.Command, *Cmd) {
	c := &Cmd{
		appVersion: appVersion,
		config:     viper.New(),
	}

	rootCmd := &cobra.Command{
		Use:   "freeslots",
		Short: "Compute free slots inside the working day",
		Long: "Reads occupied intervals as {\"value\":[{\"start\",\"end\"}]} or a bare JSON array\n" +
			"and prints the free slots left inside the working hours of that day.",
		RunE: c.run,
	}
	rootCmd.SilenceUsage = true
	rootCmd.Flags().SortFlags = false
	rootCmd.Flags().AddFlagSet(newFlagSet())

	c.config.SetEnvPrefix(envPrefix)
	c.config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.config.AutomaticEnv()
	if err := c.config.BindPFlags(rootCmd.Flags()); err != nil {
		panic(err)
	}

	return rootCmd, c
}

func newFlagSet() *pflag.FlagSet {
	flagSet := &pflag.FlagSet{}
	flagSet.StringP(flagFile, "f", "", "Path to the JSON input. Reads stdin when empty or \"-\".")
	flagSet.String(flagValuePath, "value", "Path of the interval list inside a JSON object input, e.g. \"data.busy\".")
	flagSet.String(flagWorkdayStart, "08:00", "Start of the working hours, HH:MM in UTC.")
	flagSet.String(flagWorkdayEnd, "16:00", "End of the working hours, HH:MM in UTC.")
	flagSet.Bool(flagPretty, false, "Indent the JSON output.")
	flagSet.BoolP(flagVerbose, "v", false, "Write debug logs to stderr.")
	flagSet.BoolP(flagVersion, "V", false, "Display version.")
	return flagSet
}

func (c *Cmd) run(cmd *cobra.Command, _ []string) error {
	if c.config.GetBool(flagVersion) {
		fmt.Fprintf(cmd.OutOrStdout(), "version: %s\n", c.appVersion)
		return nil
	}

	logger := zap.NewNop()
	if c.config.GetBool(flagVerbose) {
		devLogger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		logger = devLogger
		defer logger.Sync()
	}

	input, err := c.readInput(cmd.InOrStdin())
	if err != nil {
		return err
	}

	request, err := parseOccupiedSlots(input, c.config.GetString(flagValuePath))
	if err != nil {
		return err
	}

	internalConfig := &config.InternalConfig{
		Workday: config.Workday{
			Start:              c.config.GetString(flagWorkdayStart),
			End:                c.config.GetString(flagWorkdayEnd),
			ConvertWindowStart: "09:00",
			ConvertWindowEnd:   "18:00",
		},
	}
	scheduleUsecase, err := schedule.NewScheduleUsecase(internalConfig, logger)
	if err != nil {
		return err
	}

	response, err := scheduleUsecase.FindFreeSlots(cmd.Context(), request)
	if err != nil {
		return userError(err)
	}

	var output []byte
	if c.config.GetBool(flagPretty) {
		output, err = json.MarshalIndent(response, "", "  ")
	} else {
		output, err = json.Marshal(response)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return err
}

func (c *Cmd) readInput(stdin io.Reader) ([]byte, error) {
	path := c.config.GetString(flagFile)
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

// parseOccupiedSlots accepts a bare interval list, or an object holding the
// list at valuePath (the HTTP request body uses "value").
func parseOccupiedSlots(input []byte, valuePath string) (*requests.OccupiedSlots, error) {
	input = bytes.TrimSpace(input)
	if len(input) == 0 {
		return nil, errors.New("no input: expected occupied slots as JSON")
	}
	if !gjson.ValidBytes(input) {
		return nil, errors.New("invalid input: not a JSON document")
	}

	list := gjson.ParseBytes(input)
	if !list.IsArray() {
		list = list.Get(valuePath)
	}

	request := new(requests.OccupiedSlots)
	if list.Exists() {
		if err := json.Unmarshal([]byte(list.Raw), &request.Value); err != nil {
			return nil, fmt.Errorf("invalid input: %w", err)
		}
	}

	if err := utils.ValidateStruct(request); err != nil {
		if field, _ := exceptions.FirstValidationFailure(err); field == "value" {
			return nil, userError(exceptions.ErrInvalidOccupiedSlots(err))
		}
		return nil, fmt.Errorf("invalid input: %s", exceptions.FormatAllValidationErrors(err))
	}
	return request, nil
}

func userError(err error) error {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return errors.New(customErr.ClientMessage)
	}
	return err
}
