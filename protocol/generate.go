// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Generator file to build the contained protobufs.
//
// Generation requires protoc and the legacy (APIv1) protoc-gen-go plugin,
// which emits messages that the runtime describes from their struct tags.
//
// On Debian, protoc is the "protobuf-compiler" package.

//go:build protoc
// +build protoc

//go:generate protoc --go_out=paths=source_relative:. demo.proto netmessages.proto dota_modifiers.proto

package protocol

import (
	_ "github.com/golang/protobuf/proto"
)
