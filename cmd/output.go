package cmd

import (
	"github.com/ramanasai/journal/internal/utils"
)

var noColor bool

func newRenderer(format string) (*utils.Renderer, error) {
	f, err := utils.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	rc := utils.DefaultRenderConfig()
	rc.Format = f
	if noColor {
		rc.Color = false
	}
	return utils.NewRenderer(rc), nil
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}
