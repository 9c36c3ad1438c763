// Command excise runs the excise duty calculator once and prints the result.
//
//	excise --og 1.050 --fg 1.010 --volume 85.2
//	EXCISE_ABV=5.25 EXCISE_VOLUME=85.2 excise --json
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/SscSPs/brew_notes_app/internal/dto"
	"github.com/SscSPs/brew_notes_app/internal/utils/excise"
	json "github.com/goccy/go-json"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "excise:", err)
		os.Exit(2)
	}
}

func run(args []string, out io.Writer) error {
	fs := pflag.NewFlagSet("excise", pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.String("og", "", "original gravity, e.g. 1.050")
	fs.String("fg", "", "final gravity, e.g. 1.010")
	fs.String("abv", "", "ABV percent; takes precedence over --og/--fg")
	fs.String("volume", "", "packaged volume in litres")
	fs.String("rate", "", fmt.Sprintf("excise duty rate in AUD per LAL (default %s)", excise.FormatAmount(excise.DefaultDutyRate)))
	fs.Bool("json", false, "print the result as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	v := viper.New()
	v.SetEnvPrefix("EXCISE")
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	req := dto.CalculateExciseRequest{
		OriginalGravity: v.GetString("og"),
		FinalGravity:    v.GetString("fg"),
		ABV:             v.GetString("abv"),
		Size:            v.GetString("volume"),
	}
	if v.IsSet("rate") {
		rate := v.GetString("rate")
		req.ExciseDutyRate = &rate
	}

	m := req.ToMeasurement()
	if m.Entry() == excise.EntryNone {
		return errors.New("either --abv or both --og and --fg are required")
	}
	resp := dto.ToExciseResultResponse(m.Entry(), excise.Calculate(m))

	if v.GetBool("json") {
		b, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}
	return writeText(out, resp)
}

func writeText(out io.Writer, r dto.ExciseResultResponse) error {
	var b strings.Builder
	fmt.Fprintf(&b, "ABV%%:                     %s\n", excise.FormatAmount(r.ABVPercent))
	fmt.Fprintf(&b, "Precise LAL:              %s\n", r.PreciseLAL)
	fmt.Fprintf(&b, "Truncated LAL (for duty): %s\n", r.TruncatedLALDisplay)
	fmt.Fprintf(&b, "Excise Duty Rate:         %s\n", excise.FormatAmount(r.RateApplied))
	fmt.Fprintf(&b, "Excise Duty Payable:      $%s\n", r.DutyPayableDisplay)
	_, err := io.WriteString(out, b.String())
	return err
}
