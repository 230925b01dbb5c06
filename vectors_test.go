package chronohash

import "strings"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

type vector struct {
	input  string
	rounds int
	normal string
	fast   string
}

func byteRange(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return string(b)
}

var vectors = []vector{
	{
		input:  "",
		rounds: 20,
		normal: "659e99ef12cc04701f56f1829a2c04b56f2097861a4b31b860b296be90d97592",
		fast:   "b9da9d6d0c8d3f2cac0b94cc00d2054183955be0f126fc473a24f70e9e1f57b9",
	},
	{
		input:  "a",
		rounds: 20,
		normal: "d540875c12808f1a693ba71f6bac5926cbd4c178603cccd8aff481244ec1208f",
		fast:   "2d61572fabea68230a84b0dcdc7926bc40df29810300ebb793853e156fcd21db",
	},
	{
		input:  "abc",
		rounds: 20,
		normal: "6c52dc74b33a4ae19a5d2634e90226733ec374411cb0c7ebf6792f1b4dd014d0",
		fast:   "2e3abef91100198116ca186c807ef70f548fd86e18eb9eb91b63b93b71d51f22",
	},
	{
		input:  "message digest",
		rounds: 20,
		normal: "30b0558cf1edfab3535e46de830a2529188fc3d6cbf49a5775f4e0229c9f8e44",
		fast:   "0b87ce90e80319060bbed35c2c083f8f0ab7e0b79546c34271add264a0cc4f68",
	},
	{
		input:  "abcdefghijklmnopqrstuvwxyz",
		rounds: 21,
		normal: "1100ec74a5a64c866c2ca658a075a6916ef7201c7cb46251c4510eb80a60cbf2",
		fast:   "d5e29f81d07efd92787e150418b34af4c853807f81ec8fd724846f55a2bffb10",
	},
	{
		input:  "The quick brown fox jumps over the lazy dog",
		rounds: 21,
		normal: "7079482a6a16061832c275998d497572396e9cb52dde71dde8b25d90de19d717",
		fast:   "93661891fb4a8d81b4547c0c99111538733a30e63e5eb141846eb98714ae0052",
	},
	{
		input:  "hello world",
		rounds: 20,
		normal: "5bfebdb14f30dedce8f9f4639e1e6c629027840e6123bfd3919220fb5323b3f0",
		fast:   "53c27c3477ca1723e0448e31ab9c2bca6d7272c87729599436c926a7052491a8",
	},
	/* 55 bytes is the longest message whose padding fits in one block. */
	{
		input:  strings.Repeat("a", 55),
		rounds: 20,
		normal: "1f54f2fa9b2708c4059f76f0b175befda1dabae7d853549cf5c7f559e5f962e5",
		fast:   "8fae57581d4f2ab023b1c5500d9065d7101c57f8d6c5edde27ec6e6323a249db",
	},
	{
		input:  strings.Repeat("a", 56),
		rounds: 20,
		normal: "5a03c65d96583c944dd6a3373f8e6e176258ef9e6ccdc4d34884339034dd582b",
		fast:   "863bf9309f9f1f5b76d8ef1770722f48309d5088112de881f2e5de47b3b6b0b8",
	},
	{
		input:  strings.Repeat("a", 64),
		rounds: 20,
		normal: "80fb3bddba19cb182b79207eee2c18af43b2ae6836e7217097fc1eebb846cd17",
		fast:   "38e3670aeb9eb162693d5a5581c023e2e19ab30b035e35d529e6d6f1331275bb",
	},
	{
		input:  strings.Repeat("a", 1000),
		rounds: 20,
		normal: "6330e4148db55e5b24a799b381a5c73efb3d752d7617644f03997776f6930871",
		fast:   "f1c9b53437ce1c1097d4793bf5aadfdccf92fcc975fd5b9b20b4ab058617303f",
	},
	{
		input:  byteRange(256),
		rounds: 32,
		normal: "9d34dd0a2643ee6a6f4930d25fa56c7966c08d4188415d626de4a45a9e7deb47",
		fast:   "6954eca4a27c8fae3c9656fb687a929e857257c78120c90ffc92d19ab9d0f76b",
	},
}
