// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package protocol

import (
	"bytes"
	"fmt"

	"github.com/lunixbochs/struc"
	"github.com/pkg/errors"
)

// UserInfoSize is the encoded size of a UserInfo record.
const UserInfoSize = 140

// UserInfo is a player identity record, the value type of rows in the
// "userinfo" string table.
//
//	uint64  xuid;
//	char    name[32];
//	int32   userID;
//	char    guid[33];
//	uint32  friendsID;       // 4-byte aligned
//	char    friendsName[32];
//	bool    fakeplayer;
//	bool    ishltv;
//	uint32  customFiles[4];  // 4-byte aligned
//	uint8   filesDownloaded;
//
// The record is little-endian and padded to a multiple of 8 bytes.
type UserInfo struct {
	XUID            uint64 `struc:",little"`
	RawName         [32]byte
	UserID          int32 `struc:",little"`
	RawGUID         [33]byte
	Pad0            [3]byte `struc:"[3]pad"`
	FriendsID       uint32  `struc:",little"`
	RawFriendsName  [32]byte
	FakePlayer      bool
	IsHLTV          bool
	Pad1            [2]byte   `struc:"[2]pad"`
	CustomFiles     [4]uint32 `struc:",little"`
	FilesDownloaded uint8
	Pad2            [3]byte `struc:"[3]pad"`
}

// ParseUserInfo decodes a UserInfo record from data.
//
// data must hold at least UserInfoSize bytes; trailing bytes are ignored.
func ParseUserInfo(data []byte) (*UserInfo, error) {
	if len(data) < UserInfoSize {
		return nil, errors.Errorf("userinfo record is %d bytes, need %d", len(data), UserInfoSize)
	}

	var ui UserInfo
	if err := struc.Unpack(bytes.NewReader(data[:UserInfoSize]), &ui); err != nil {
		return nil, errors.Wrap(err, "could not unpack userinfo record")
	}
	return &ui, nil
}

// Name returns the player's display name.
func (ui *UserInfo) Name() string { return cString(ui.RawName[:]) }

// GUID returns the player's signed GUID.
func (ui *UserInfo) GUID() string { return cString(ui.RawGUID[:]) }

// FriendsName returns the player's friends-network name.
func (ui *UserInfo) FriendsName() string { return cString(ui.RawFriendsName[:]) }

func (ui *UserInfo) String() string {
	return fmt.Sprintf("UserInfo{xuid=%d, name=%q, user_id=%d, guid=%q, friends_id=%d, fake=%v, hltv=%v}",
		ui.XUID, ui.Name(), ui.UserID, ui.GUID(), ui.FriendsID, ui.FakePlayer, ui.IsHLTV)
}

func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
