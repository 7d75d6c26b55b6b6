// Copyright 2025 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package protocol

import (
	"errors"
	"fmt"
)

// CommandTooLongError indicates a command string that does not fit the
// fixed-width wire field
type CommandTooLongError struct {
	Command string
}

func (e CommandTooLongError) Error() string {
	return fmt.Sprintf(
		"command %q exceeds %d bytes",
		e.Command,
		CommandSize,
	)
}

// Sentinel error for oversized commands so callers can use errors.Is
var ErrCommandTooLong = errors.New("command exceeds maximum size")

func (CommandTooLongError) Is(target error) bool {
	return target == ErrCommandTooLong
}

// UnrecognizedCommandError indicates a well-framed message whose command is
// absent from the dispatch table
type UnrecognizedCommandError struct {
	Command string
}

func (e UnrecognizedCommandError) Error() string {
	return fmt.Sprintf("unrecognized network command %q", e.Command)
}

// Sentinel error for unrecognized commands so callers can use errors.Is
var ErrUnrecognizedCommand = errors.New("unrecognized network command")

func (UnrecognizedCommandError) Is(target error) bool {
	return target == ErrUnrecognizedCommand
}

// ProtocolViolationError indicates a payload that is well-framed but
// semantically invalid
type ProtocolViolationError struct {
	Message string
}

func (e ProtocolViolationError) Error() string {
	return fmt.Sprintf("protocol violation: %s", e.Message)
}

// Sentinel error for protocol violations so callers can use errors.Is
var ErrProtocolViolation = errors.New("protocol violation")

func (ProtocolViolationError) Is(target error) bool {
	return target == ErrProtocolViolation
}

// ErrTrailingData indicates extra bytes after a complete envelope when the
// caller required the entire input to be consumed
var ErrTrailingData = errors.New("trailing data after envelope")
