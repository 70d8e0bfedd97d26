package cli

import (
	"io"

	"github.com/urfave/cli/v3"
)

func CommandsForTest() []*cli.Command {
	return []*cli.Command{
		downloadCommand(io.Discard),
		unzipCommand(io.Discard),
		prepareCommand(io.Discard),
		toFloatCommand(io.Discard),
	}
}
