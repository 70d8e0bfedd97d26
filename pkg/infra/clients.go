package infra

import (
	"io"
	"os"

	"github.com/secmon-lab/dataprep/pkg/domain/interfaces"
	"github.com/secmon-lab/dataprep/pkg/infra/ziparchive"
)

type Clients struct {
	storage  interfaces.ObjectStorage
	archiver interfaces.Archiver
	stdout   io.Writer
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		archiver: ziparchive.New(),
		stdout:   os.Stdout,
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) ObjectStorage() interfaces.ObjectStorage {
	return x.storage
}
func (x *Clients) Archiver() interfaces.Archiver {
	return x.archiver
}

// Stdout is where archive listings are printed.
func (x *Clients) Stdout() io.Writer {
	return x.stdout
}

func WithObjectStorage(client interfaces.ObjectStorage) Option {
	return func(x *Clients) {
		x.storage = client
	}
}

func WithArchiver(client interfaces.Archiver) Option {
	return func(x *Clients) {
		x.archiver = client
	}
}

func WithStdout(w io.Writer) Option {
	return func(x *Clients) {
		x.stdout = w
	}
}
