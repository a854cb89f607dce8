package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Error taxonomy of the command line boundary. The search itself never fails
// on valid input.
var (
	// ErrUsage reports a wrong number of positional arguments.
	ErrUsage = errors.New("wrong number of arguments")

	// ErrParse reports a positional argument that is not an integer.
	ErrParse = errors.New("not an integer")

	// ErrInvalidInput reports a negative animal count.
	ErrInvalidInput = errors.New("invalid input")
)

// UsageLine is printed before the error message on ErrUsage.
const UsageLine = "USAGE: magicforest [flags] <goats> <wolves> <lions>"

var errorPrefix = color.New(color.FgRed, color.Bold)

// PrintError writes "ERROR: <message>" to w, preceded by the usage line when
// err is a usage error.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, ErrUsage) {
		fmt.Fprintln(w, UsageLine)
	}
	errorPrefix.Fprint(w, "ERROR:")
	fmt.Fprintf(w, " %v\n", err)
}

// flagError maps pflag's complaint about "-5" to ErrInvalidInput: a leading
// minus sign on a count is read as a shorthand flag before our parser sees it.
func flagError(_ *cobra.Command, err error) error {
	const prefix = "unknown shorthand flag: '"
	msg := err.Error()
	if strings.HasPrefix(msg, prefix) && len(msg) > len(prefix) {
		if c := msg[len(prefix)]; c >= '0' && c <= '9' {
			return fmt.Errorf("%w: animal counts cannot be negative (%v)", ErrInvalidInput, err)
		}
	}

	return err
}
