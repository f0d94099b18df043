package save

import (
	"errors"

	"github.com/jcfieldsdev/sonic3-save-editor/internal/codec"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/detector"
)

// Errors returned by decoding, encoding and the slot accessors.
var (
	ErrNoValidData                 = errors.New("save file contains no valid data")
	ErrNoWritableCampaign          = errors.New("no campaign is enabled for writing")
	ErrLongFormRequiredForPlatform = errors.New("platform requires the long campaign to be written")
	ErrSectionEmpty                = errors.New("section contains no save data")
	ErrIndexOutOfRange             = errors.New("index out of range")
	ErrInvalidSnapshot             = errors.New("invalid snapshot")
)

// Errors of the lower layers, exported for callers that only import this package.
var (
	ErrUnrecognizedFormat = detector.ErrUnrecognizedFormat
	ErrTruncated          = codec.ErrTruncated
	ErrMalformedContainer = codec.ErrMalformedContainer
)
