package chain

import "golang.org/x/xerrors"

var (
	ErrDataByteRange = xerrors.New("chain: data byte outside 0-255")
)
