package storage

import (
	"golang.org/x/xerrors"
)

var (
	ErrNoSuchChain     = xerrors.New("storage: no such chain")
	ErrUnableToInflate = xerrors.New("storage: error running zlib inflate")
)
