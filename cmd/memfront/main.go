// Package main provides the MemFront command-line interface: a driver for
// the byte-granular load front-end simulation.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sarchlab/memfront/loadunit"
	"github.com/sarchlab/memfront/system"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "memfront",
	Short: "A byte-granular load front-end simulator for word-organized memories.",
	Long: "MemFront simulates a synchronous address-translation and data-extraction\n" +
		"pipeline: byte-granular word/halfword/byte reads against a memory that is\n" +
		"physically organized as fixed-width, big-endian words.",
}

var readCmd = &cobra.Command{
	Use:   "read <byte-address> <size> [<byte-address> <size> ...]",
	Short: "Issue reads against a memory image and print the results.",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runRead,
}

var configCmd = &cobra.Command{
	Use:   "config <path>",
	Short: "Write the default configuration to a JSON file.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return loadunit.DefaultConfig().SaveConfig(args[0])
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable per-cycle trace logging")
	readCmd.Flags().String("config", "", "path to a JSON configuration file")
	readCmd.Flags().String("image", "", "path to a binary memory image loaded at address 0")

	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(configCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	if len(args)%2 != 0 {
		return fmt.Errorf("arguments must be <byte-address> <size> pairs")
	}

	log := logrus.New()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	config := loadunit.DefaultConfig()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := loadunit.LoadConfig(path)
		if err != nil {
			return err
		}
		config = loaded
	}

	sys, err := system.New(config, system.WithLogger(log))
	if err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("image"); path != "" {
		image, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read memory image: %w", err)
		}
		sys.Memory().WriteBytes(0, image)
		log.WithFields(logrus.Fields{
			"path":  path,
			"bytes": len(image),
		}).Info("loaded memory image")
	}

	for i := 0; i < len(args); i += 2 {
		byteAddr, err := strconv.ParseUint(args[i], 0, 64)
		if err != nil {
			return fmt.Errorf("invalid byte address %q: %w", args[i], err)
		}

		size, ok := loadunit.ParseTransferSize(args[i+1])
		if !ok {
			return fmt.Errorf("invalid transfer size %q (want word, halfword, or byte)", args[i+1])
		}

		result := sys.ReadSync(byteAddr, size)
		fmt.Printf("0x%0*X %-8s -> 0x%08X\n",
			(int(config.ByteAddressBits)+3)/4, byteAddr, size, result)
	}

	stats := sys.Stats()
	log.WithFields(logrus.Fields{
		"cycles":  stats.Cycles,
		"reads":   stats.ReadsAdmitted,
		"retired": stats.ReadsRetired,
	}).Info("simulation complete")

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
