// Package share turns characters into compact URL-safe tokens and back
package share

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// maxDecodedSize bounds decompressed tokens
const maxDecodedSize = 4 << 20

var (
	encoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	decoder, _ = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxDecodedSize))
)

// Encode serializes a character as JSON, compresses it with zstd and encodes it
// as unpadded URL-safe base64. Callers strip the character first when sharing.
func Encode(ch *dnd5e.Character) (string, error) {
	if ch == nil {
		return "", errors.InvalidArgument("character is required")
	}

	raw, err := json.Marshal(ch)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal character")
	}

	compressed := encoder.EncodeAll(raw, make([]byte, 0, len(raw)/2))
	return base64.RawURLEncoding.EncodeToString(compressed), nil
}

// Decode reverses Encode. Malformed tokens return an InvalidArgument error, never a panic.
func Decode(token string) (*dnd5e.Character, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.InvalidArgument("share token is required")
	}

	compressed, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "share token is not valid base64")
	}

	raw, err := decoder.DecodeAll(compressed, nil)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "share token failed to decompress")
	}

	var ch dnd5e.Character
	if err := json.Unmarshal(raw, &ch); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "share token does not contain a character")
	}
	if ch.ID == "" {
		return nil, errors.InvalidArgument("shared character has no id")
	}

	return &ch, nil
}
