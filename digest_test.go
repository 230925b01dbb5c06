package chronohash

import (
	"errors"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/zeebo/assert"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

func TestDigestString(t *testing.T) {
	var d Digest
	d[0], d[31] = 0xab, 0x01
	s := d.String()
	assert.Equal(t, len(s), 64)
	assert.Equal(t, s[:2], "ab")
	assert.Equal(t, s[62:], "01")
}

func TestParseDigest(t *testing.T) {
	for _, tv := range vectors {
		d, err := ParseDigest(tv.normal)
		assert.NoError(t, err)
		assert.Equal(t, d, SumNormal([]byte(tv.input)))
	}

	_, err := ParseDigest("abcd")
	assert.That(t, errors.Is(err, ErrDigestSize))

	_, err = ParseDigest(vectors[0].normal + "00")
	assert.That(t, errors.Is(err, ErrDigestSize))

	_, err = ParseDigest("zz" + vectors[0].normal[2:])
	assert.Error(t, err)
}

func TestMustParseDigest(t *testing.T) {
	assert.Equal(t, MustParseDigest(vectors[2].fast), SumFast([]byte("abc")))

	defer func() { assert.NotNil(t, recover()) }()
	MustParseDigest("nope")
}

func TestDigestJSON(t *testing.T) {
	type record struct {
		Target string `json:"target"`
		Digest Digest `json:"digest"`
	}
	in := record{Target: "abc", Digest: SumNormal([]byte("abc"))}

	b, err := json.Marshal(in)
	assert.NoError(t, err)
	assert.Equal(t, string(b), `{"target":"abc","digest":"`+vectors[2].normal+`"}`)

	var out record
	assert.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, out, in)

	assert.Error(t, json.Unmarshal([]byte(`{"digest":12}`), &out))
	assert.Error(t, json.Unmarshal([]byte(`{"digest":"00"}`), &out))
}
