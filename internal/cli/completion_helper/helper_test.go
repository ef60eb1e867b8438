package completion_helper

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v3"
)

func TestDefaultFlagComplete(t *testing.T) {
	var out bytes.Buffer
	cmd := &cli.Command{
		Name:   "lint",
		Writer: &out,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "edit", Aliases: []string{"e"}},
			&cli.BoolFlag{Name: "strict"},
		},
	}

	DefaultFlagComplete(context.Background(), cmd)

	assert.Equal(t, "--edit\n-e\n--strict\n", out.String())
}
