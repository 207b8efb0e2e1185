package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"kailash/internal/diag"
	"kailash/internal/gfx"
)

// maxPolls bounds a single poll loop so a stuck backend cannot spin forever.
const maxPolls = 64

var pollOnce bool

var pollCmd = &cobra.Command{
	Use:   "poll [CODE...]",
	Short: "Raise error codes on a software backend and report them",
	Long: `poll records the given codes (names like GL_INVALID_ENUM or numbers like 0x0500)
on a software error register, then reports them one read at a time until the
register is empty.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		codes, err := parseCodes(args)
		if err != nil {
			return err
		}
		r := diag.FromContext(cmd.Context())
		reg := gfx.NewRegister()
		for _, c := range codes {
			if !c.Known() {
				r.LogInfo(diag.VerbosityDetail, "Backend", fmt.Sprintf("raising unrecognized code %s", c))
			}
			reg.Raise(c)
		}
		n := pollBackend(r, reg, pollOnce)
		if reg.Pending() > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "%d read, %d still pending\n", n, reg.Pending())
		}
		return nil
	},
}

func init() {
	pollCmd.Flags().BoolVar(&pollOnce, "once", false, "read the register a single time")
}

func parseCodes(args []string) ([]gfx.ErrorCode, error) {
	codes := make([]gfx.ErrorCode, 0, len(args))
	for _, arg := range args {
		code, err := gfx.ParseErrorCode(arg)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, nil
}

// pollBackend reports backend errors until NoError (or once) and returns
// how many non-zero codes were read.
func pollBackend(r *diag.Reporter, b gfx.Backend, once bool) int {
	n := 0
	for i := 0; i < maxPolls; i++ {
		if r.ReportBackendError(b) == gfx.NoError {
			break
		}
		n++
		if once {
			break
		}
	}
	return n
}
