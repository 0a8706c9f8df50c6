package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/matthias-bs/bresser-decode/internal/config"
	"github.com/matthias-bs/bresser-decode/internal/options"
	"github.com/matthias-bs/bresser-decode/pkg/bresserdecode"
)

var (
	rootCmd = &cobra.Command{
		Use:   "bresser-decode [hex]",
		Short: "Decode Bresser weather sensor LoRaWAN uplinks",
		Long:  "bresser-decode decodes Bresser weather sensor LoRaWAN uplink payloads into named fields.",
		Args:  cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logrus.SetLevel(cfg.LogLevel())
			p, err := cfg.ResolveProfile()
			if err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{"profile": p.Name, "width": p.Width()}).Debug("profile selected")
			cmd.SetContext(bresserdecode.WithProfile(cmd.Context(), p))
			settings = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := options.Encoding(settings.Encoding)
			ctx := cmd.Context()
			if len(args) == 0 {
				return runInteractive(ctx, enc)
			}
			return runDecode(ctx, enc, args[0])
		},
	}

	settings    *config.Config
	configPath  string
	profileName string
	profileFile string
	features    string
	useBase64   bool
	logLevel    string
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "path to a YAML configuration file")
	flags.StringVar(&profileName, "profile", "", "built-in payload profile name")
	flags.StringVar(&profileFile, "profile-file", "", "path to a YAML payload profile")
	flags.StringVar(&features, "features", "", "comma-separated firmware feature flags used to build the profile")
	flags.BoolVar(&useBase64, "base64", false, "payloads are base64 encoded instead of hex")
	flags.StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.Fatal(err)
	}
}

// loadConfig reads the optional config file and applies command line flags on
// top of it. A profile selected on the command line replaces any selection
// made in the file.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("profile") {
		cfg.Profile, cfg.ProfileFile, cfg.Features = profileName, "", nil
	}
	if flags.Changed("features") {
		cfg.Features, cfg.ProfileFile = options.ParseFeatures(features), ""
	}
	if flags.Changed("profile-file") {
		cfg.ProfileFile, cfg.Features = profileFile, nil
	}
	if flags.Changed("base64") {
		cfg.Encoding = string(options.EncodingHex)
		if useBase64 {
			cfg.Encoding = string(options.EncodingBase64)
		}
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if flags.Changed("listen") {
		cfg.Server.Listen = listenAddr
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runInteractive(ctx context.Context, enc options.Encoding) error {
	scanner := bufio.NewScanner(os.Stdin)
	logrus.Info("bresser-decode interactive mode. Paste a payload and press Enter (Ctrl+D to exit).")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := runDecode(ctx, enc, line); err != nil {
			logrus.WithError(err).Error("failed to decode payload")
		}
	}
	return scanner.Err()
}

func runDecode(ctx context.Context, enc options.Encoding, raw string) error {
	payload, err := options.ParsePayload(raw, enc)
	if err != nil {
		return err
	}
	result, err := bresserdecode.Decode(ctx, payload, bresserdecode.DecodeOptions{})
	if err != nil {
		return err
	}
	fmt.Println(result.String())
	return nil
}
