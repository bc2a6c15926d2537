// Copyright © 2025 ANTDChain Contributors
// Licensed under the MIT License (MIT). See LICENSE in the repository root
// for more information.

// Package script holds the subset of Bitcoin script serialisation needed to
// push integers: the push opcodes, minimal number encoding and push framing.
package script

import "fmt"

// Opcode is a single script instruction byte.
type Opcode byte

const (
    OP_0         Opcode = 0x00
    OP_PUSHDATA1 Opcode = 0x4c
    OP_PUSHDATA2 Opcode = 0x4d
    OP_PUSHDATA4 Opcode = 0x4e
    OP_1NEGATE   Opcode = 0x4f
    OP_1         Opcode = 0x51
    OP_16        Opcode = 0x60
)

// Data pushed with a bare length byte must be shorter than OP_PUSHDATA1.
const MaxDirectPushLen = int(OP_PUSHDATA1) - 1

func (op Opcode) String() string {
    switch {
    case op == OP_0:
        return "OP_0"
    case op >= 0x01 && op <= 0x4b:
        return fmt.Sprintf("OP_DATA_%d", byte(op))
    case op == OP_PUSHDATA1:
        return "OP_PUSHDATA1"
    case op == OP_PUSHDATA2:
        return "OP_PUSHDATA2"
    case op == OP_PUSHDATA4:
        return "OP_PUSHDATA4"
    case op == OP_1NEGATE:
        return "OP_1NEGATE"
    case op >= OP_1 && op <= OP_16:
        return fmt.Sprintf("OP_%d", byte(op-OP_1)+1)
    default:
        return fmt.Sprintf("OP_UNKNOWN_%#02x", byte(op))
    }
}

// SmallIntOpcode returns the opcode that pushes n by itself. Only 0, -1 and
// 1..16 have one.
func SmallIntOpcode(n int64) (Opcode, bool) {
    switch {
    case n == 0:
        return OP_0, true
    case n == -1 || (n >= 1 && n <= 16):
        return Opcode(n + int64(OP_1-1)), true
    default:
        return 0, false
    }
}

// PushKind classifies how a value ends up on the stack.
type PushKind int

const (
    PushZero PushKind = iota
    PushSmallInt
    PushDirect
    PushData1
    PushData2
    PushData4
)

var pushKindNames = [...]string{
    PushZero:     "zero",
    PushSmallInt: "small-int",
    PushDirect:   "direct",
    PushData1:    "pushdata1",
    PushData2:    "pushdata2",
    PushData4:    "pushdata4",
}

func (k PushKind) String() string {
    if k < 0 || int(k) >= len(pushKindNames) {
        return fmt.Sprintf("PushKind(%d)", int(k))
    }
    return pushKindNames[k]
}

// PushKindForLen picks the framing for a payload of n bytes.
func PushKindForLen(n int) PushKind {
    switch {
    case n <= MaxDirectPushLen:
        return PushDirect
    case n <= 0xff:
        return PushData1
    case n <= 0xffff:
        return PushData2
    default:
        return PushData4
    }
}

// PushKindFor reports how the integer n is pushed.
func PushKindFor(n int64) PushKind {
    if op, ok := SmallIntOpcode(n); ok {
        if op == OP_0 {
            return PushZero
        }
        return PushSmallInt
    }
    return PushKindForLen(len(EncodeScriptNum(n)))
}
