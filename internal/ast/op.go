package ast

// BinaryOp enumerates binary operators.
type BinaryOp uint8

const (
	BinAdd BinaryOp = iota
	BinSub
	BinMul
	BinDiv
	BinMod
	BinEq
	BinNe
	BinLt
	BinLtEq
	BinGt
	BinGtEq
	BinAnd
	BinOr
)

var binaryOpNames = [...]string{
	BinAdd: "+", BinSub: "-", BinMul: "*", BinDiv: "/", BinMod: "%",
	BinEq: "==", BinNe: "!=", BinLt: "<", BinLtEq: "<=", BinGt: ">",
	BinGtEq: ">=", BinAnd: "&&", BinOr: "||",
}

func (op BinaryOp) String() string {
	if int(op) < len(binaryOpNames) {
		return binaryOpNames[op]
	}
	return "?"
}

// UnaryOp enumerates unary operators.
type UnaryOp uint8

const (
	UnNeg UnaryOp = iota
	UnNot
	UnDeref
	UnRef
	UnAddressOf
)

var unaryOpNames = [...]string{
	UnNeg: "-", UnNot: "!", UnDeref: "*", UnRef: "&", UnAddressOf: "@",
}

func (op UnaryOp) String() string {
	if int(op) < len(unaryOpNames) {
		return unaryOpNames[op]
	}
	return "?"
}

// AssignOp enumerates assignment operators, plain and compound.
type AssignOp uint8

const (
	AssignPlain AssignOp = iota
	AssignAdd
	AssignSub
	AssignMul
	AssignDiv
)

var assignOpNames = [...]string{
	AssignPlain: "=", AssignAdd: "+=", AssignSub: "-=", AssignMul: "*=",
	AssignDiv: "/=",
}

func (op AssignOp) String() string {
	if int(op) < len(assignOpNames) {
		return assignOpNames[op]
	}
	return "?"
}
