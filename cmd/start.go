package cmd

import (
	"fmt"
	"io/ioutil"

	"chip8vm/emu/cpu"
	"chip8vm/emu/screen"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var startCmd = &cobra.Command{
	Use:   "start `path/ROM`",
	Short: "load the ROM and start the VM",
	Args:  cobra.ExactArgs(1),
	RunE:  Start,
}

// chip8vm start 'path/to/ROM' -w -c 700
func Start(cmd *cobra.Command, args []string) error {
	rom, err := ioutil.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading ROM: %w", err)
	}

	timers := cpu.NewTimers()
	emu, err := cpu.New(rom, timers, viper.GetBool("wrapping_enabled"))
	if err != nil {
		return fmt.Errorf("starting the VM: %w", err)
	}

	return screen.Run(emu, timers, screen.Config{
		Title:      "chip8vm - " + args[0],
		FontPath:   viper.GetString("font_path"),
		ClockSpeed: viper.GetInt("clock"),
	})
}

func init() {
	rootCmd.AddCommand(startCmd)
	startCmd.Flags().BoolP("wrapping_enabled", "w", false, "wrap sprites on the borders of the screen (needed by some games, such as BLITZ)")
	startCmd.Flags().StringP("font_path", "f", "font.ttf", "path to the font used by the state overlay")
	startCmd.Flags().IntP("clock", "c", 550, "cpu steps per second (Up/Down arrows change it at runtime)")

	// flag beats config file beats default
	viper.BindPFlag("wrapping_enabled", startCmd.Flags().Lookup("wrapping_enabled"))
	viper.BindPFlag("font_path", startCmd.Flags().Lookup("font_path"))
	viper.BindPFlag("clock", startCmd.Flags().Lookup("clock"))
}
