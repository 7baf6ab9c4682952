package main

import (
	"fmt"
	"os"

	"chris-cli/clients"
	"chris-cli/logging"
	"chris-cli/processor"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile string
	verbose bool
	logger  *zap.SugaredLogger

	rootCmd = &cobra.Command{
		Use:   "chris-cli",
		Short: "Shell-style access to a remote resource store",
		Long: `chris-cli presents the remote store's directories, files, and links
as one virtual filesystem and drives it with shell-style commands
(ls, mv, rm, touch, upload, cat, cd).

The current virtual working directory and credentials are kept in the
config file; relative paths resolve against that directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.chris-cli.yaml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	rootCmd.PersistentFlags().StringP("address", "a", "", "base URL of the store API")
	rootCmd.PersistentFlags().StringP("token", "t", "", "API auth token")

	// Bind flags to viper
	viper.BindPFlag("chris.address", rootCmd.PersistentFlags().Lookup("address"))
	viper.BindPFlag("chris.token", rootCmd.PersistentFlags().Lookup("token"))

	// Bind environment variables
	viper.BindEnv("chris.address", "CHRIS_ADDRESS")
	viper.BindEnv("chris.token", "CHRIS_TOKEN")

	viper.SetDefault("chris.cwd", "/")

	rootCmd.AddCommand(lsCmd(), mvCmd(), rmCmd(), touchCmd(), uploadCmd(), catCmd(), cdCmd(), pwdCmd())
}

func initConfig() {
	if cfgFile != "" {
		// Use specified config file
		viper.SetConfigFile(cfgFile)
	} else {
		// Look for config file in home directory
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".chris-cli")
	}

	viper.AutomaticEnv() // read environment variables

	// If config file is found, read it
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}

	logger = logging.New(verbose)
}

func validation() error {
	if viper.GetString("chris.address") == "" {
		return fmt.Errorf("store address is required (--address, CHRIS_ADDRESS, or config)")
	}
	return nil
}

// newProcessor wires the authenticated client into a processor. The
// current virtual working directory is read from config on every
// resolution so the processor always sees the latest value.
func newProcessor(cmd *cobra.Command) (*processor.Processor, error) {
	if err := validation(); err != nil {
		return nil, err
	}

	client := clients.NewChrisClient(
		viper.GetString("chris.address"),
		viper.GetString("chris.token"),
	)
	if err := client.Authenticate(cmd.Context()); err != nil {
		return nil, fmt.Errorf("failed to authenticate with store: %w", err)
	}

	return processor.NewProcessor(&processor.Dependencies{
		Client: client,
		CWD:    func() string { return viper.GetString("chris.cwd") },
		Logger: logger,
	}), nil
}

func cwdFromConfig() string {
	return viper.GetString("chris.cwd")
}

// persistCwd stores the new virtual working directory back into the
// config file, creating the file on first use.
func persistCwd(abs string) error {
	viper.Set("chris.cwd", abs)
	if err := viper.WriteConfig(); err != nil {
		return viper.SafeWriteConfig()
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
