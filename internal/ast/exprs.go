package ast

import (
	"ripple/internal/arena"
	"ripple/internal/source"
)

// Exprs manages allocation of expression nodes and their payloads.
type Exprs struct {
	Arena     *arena.Arena[Expr]
	Literals  *arena.Arena[ExprLiteralData]
	Idents    *arena.Arena[ExprIdentData]
	Parens    *arena.Arena[ExprParenData]
	Blocks    *arena.Arena[ExprBlockData]
	Ifs       *arena.Arena[ExprIfData]
	Matches   *arena.Arena[ExprMatchData]
	Loops     *arena.Arena[ExprLoopData]
	Whiles    *arena.Arena[ExprWhileData]
	Fors      *arena.Arena[ExprForData]
	Returns   *arena.Arena[ExprReturnData]
	Breaks    *arena.Arena[ExprBreakData]
	Binaries  *arena.Arena[ExprBinaryData]
	Assigns   *arena.Arena[ExprAssignData]
	Pipelines *arena.Arena[ExprPipelineData]
	Casts     *arena.Arena[ExprCastData]
	Unaries   *arena.Arena[ExprUnaryData]
	Calls     *arena.Arena[ExprCallData]
	Members   *arena.Arena[ExprMemberData]
	Indices   *arena.Arena[ExprIndexData]
}

// NewExprs creates the expression stores with the given arena chunk
// size.
func NewExprs(chunkSize int) *Exprs {
	return &Exprs{
		Arena:     arena.New[Expr](chunkSize),
		Literals:  arena.New[ExprLiteralData](chunkSize),
		Idents:    arena.New[ExprIdentData](chunkSize),
		Parens:    arena.New[ExprParenData](chunkSize),
		Blocks:    arena.New[ExprBlockData](chunkSize),
		Ifs:       arena.New[ExprIfData](chunkSize),
		Matches:   arena.New[ExprMatchData](chunkSize),
		Loops:     arena.New[ExprLoopData](chunkSize),
		Whiles:    arena.New[ExprWhileData](chunkSize),
		Fors:      arena.New[ExprForData](chunkSize),
		Returns:   arena.New[ExprReturnData](chunkSize),
		Breaks:    arena.New[ExprBreakData](chunkSize),
		Binaries:  arena.New[ExprBinaryData](chunkSize),
		Assigns:   arena.New[ExprAssignData](chunkSize),
		Pipelines: arena.New[ExprPipelineData](chunkSize),
		Casts:     arena.New[ExprCastData](chunkSize),
		Unaries:   arena.New[ExprUnaryData](chunkSize),
		Calls:     arena.New[ExprCallData](chunkSize),
		Members:   arena.New[ExprMemberData](chunkSize),
		Indices:   arena.New[ExprIndexData](chunkSize),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload uint32) ExprID {
	return e.Arena.Alloc(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
		Ty:      NoTypeSpec(),
	})
}

// Get returns the expression node for id.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(id)
}

// Len returns the number of allocated expression nodes.
func (e *Exprs) Len() int {
	return e.Arena.Len()
}

// NewLiteral creates a literal expression.
func (e *Exprs) NewLiteral(span source.Span, lit Literal) ExprID {
	payload := e.Literals.Alloc(ExprLiteralData{Value: lit})
	return e.new(ExprLiteral, span, payload.Index())
}

// NewIdent creates an identifier expression.
func (e *Exprs) NewIdent(span source.Span, name source.Symbol) ExprID {
	payload := e.Idents.Alloc(ExprIdentData{Name: name})
	return e.new(ExprIdent, span, payload.Index())
}

// NewParen creates a parenthesized expression.
func (e *Exprs) NewParen(span source.Span, inner ExprID) ExprID {
	payload := e.Parens.Alloc(ExprParenData{Inner: inner})
	return e.new(ExprParen, span, payload.Index())
}

// NewBlock creates a block expression; yield is NoExpr for a
// valueless block.
func (e *Exprs) NewBlock(span source.Span, stmts []StmtID, yield ExprID) ExprID {
	payload := e.Blocks.Alloc(ExprBlockData{Stmts: stmts, Yield: yield})
	return e.new(ExprBlock, span, payload.Index())
}

// NewIf creates an if expression; els is NoExpr when absent.
func (e *Exprs) NewIf(span source.Span, cond, then, els ExprID) ExprID {
	payload := e.Ifs.Alloc(ExprIfData{Cond: cond, Then: then, Else: els})
	return e.new(ExprIf, span, payload.Index())
}

// NewMatch creates a match expression.
func (e *Exprs) NewMatch(span source.Span, target ExprID, cases []MatchCase) ExprID {
	payload := e.Matches.Alloc(ExprMatchData{Target: target, Cases: cases})
	return e.new(ExprMatch, span, payload.Index())
}

// NewLoop creates an unconditional loop expression.
func (e *Exprs) NewLoop(span source.Span, body ExprID) ExprID {
	payload := e.Loops.Alloc(ExprLoopData{Body: body})
	return e.new(ExprLoop, span, payload.Index())
}

// NewWhile creates a while expression; els is NoExpr when absent.
func (e *Exprs) NewWhile(span source.Span, cond, body, els ExprID) ExprID {
	payload := e.Whiles.Alloc(ExprWhileData{Cond: cond, Body: body, Else: els})
	return e.new(ExprWhile, span, payload.Index())
}

// NewFor creates a for-in expression; els is NoExpr when absent.
func (e *Exprs) NewFor(span source.Span, binding source.Symbol, iterable, body, els ExprID) ExprID {
	payload := e.Fors.Alloc(ExprForData{Binding: binding, Iterable: iterable, Body: body, Else: els})
	return e.new(ExprFor, span, payload.Index())
}

// NewReturn creates a return expression; value is NoExpr for a bare
// return.
func (e *Exprs) NewReturn(span source.Span, value ExprID) ExprID {
	payload := e.Returns.Alloc(ExprReturnData{Value: value})
	return e.new(ExprReturn, span, payload.Index())
}

// NewBreak creates a break expression; value is NoExpr for a bare
// break.
func (e *Exprs) NewBreak(span source.Span, value ExprID) ExprID {
	payload := e.Breaks.Alloc(ExprBreakData{Value: value})
	return e.new(ExprBreak, span, payload.Index())
}

// NewContinue creates a continue expression.
func (e *Exprs) NewContinue(span source.Span) ExprID {
	return e.new(ExprContinue, span, 0)
}

// NewBinary creates a binary operation.
func (e *Exprs) NewBinary(span source.Span, lhs ExprID, op BinaryOp, rhs ExprID) ExprID {
	payload := e.Binaries.Alloc(ExprBinaryData{Lhs: lhs, Op: op, Rhs: rhs})
	return e.new(ExprBinary, span, payload.Index())
}

// NewAssign creates an assignment.
func (e *Exprs) NewAssign(span source.Span, target ExprID, op AssignOp, value ExprID) ExprID {
	payload := e.Assigns.Alloc(ExprAssignData{Target: target, Op: op, Value: value})
	return e.new(ExprAssign, span, payload.Index())
}

// NewPipeline creates lhs |> rhs.
func (e *Exprs) NewPipeline(span source.Span, lhs, rhs ExprID) ExprID {
	payload := e.Pipelines.Alloc(ExprPipelineData{Lhs: lhs, Rhs: rhs})
	return e.new(ExprPipeline, span, payload.Index())
}

// NewCast creates a cast expression.
func (e *Exprs) NewCast(span source.Span, value ExprID, target TypeSpecID) ExprID {
	payload := e.Casts.Alloc(ExprCastData{Value: value, Target: target})
	return e.new(ExprCast, span, payload.Index())
}

// NewUnary creates a unary operation.
func (e *Exprs) NewUnary(span source.Span, op UnaryOp, operand ExprID) ExprID {
	payload := e.Unaries.Alloc(ExprUnaryData{Op: op, Operand: operand})
	return e.new(ExprUnary, span, payload.Index())
}

// NewCall creates a call expression.
func (e *Exprs) NewCall(span source.Span, callee ExprID, args []ExprID) ExprID {
	payload := e.Calls.Alloc(ExprCallData{Callee: callee, Args: args})
	return e.new(ExprCall, span, payload.Index())
}

// NewMember creates a member access.
func (e *Exprs) NewMember(span source.Span, expr ExprID, member source.Symbol) ExprID {
	payload := e.Members.Alloc(ExprMemberData{Expr: expr, Member: member})
	return e.new(ExprMember, span, payload.Index())
}

// NewIndex creates an index access.
func (e *Exprs) NewIndex(span source.Span, expr, index ExprID) ExprID {
	payload := e.Indices.Alloc(ExprIndexData{Expr: expr, Index: index})
	return e.new(ExprIndex, span, payload.Index())
}

// NewError creates the error recovery placeholder.
func (e *Exprs) NewError(span source.Span) ExprID {
	return e.new(ExprError, span, 0)
}

// Literal returns the literal payload if id is a literal expression.
func (e *Exprs) Literal(id ExprID) (*ExprLiteralData, bool) {
	ex := e.Get(id)
	if ex.Kind != ExprLiteral {
		return nil, false
	}
	return e.Literals.At(ex.Payload), true
}

// Ident returns the identifier payload if id is an identifier.
func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	ex := e.Get(id)
	if ex.Kind != ExprIdent {
		return nil, false
	}
	return e.Idents.At(ex.Payload), true
}

// Paren returns the paren payload if id is a parenthesized expression.
func (e *Exprs) Paren(id ExprID) (*ExprParenData, bool) {
	ex := e.Get(id)
	if ex.Kind != ExprParen {
		return nil, false
	}
	return e.Parens.At(ex.Payload), true
}

// Block returns the block payload if id is a block.
func (e *Exprs) Block(id ExprID) (*ExprBlockData, bool) {
	ex := e.Get(id)
	if ex.Kind != ExprBlock {
		return nil, false
	}
	return e.Blocks.At(ex.Payload), true
}

// If returns the if payload if id is an if expression.
func (e *Exprs) If(id ExprID) (*ExprIfData, bool) {
	ex := e.Get(id)
	if ex.Kind != ExprIf {
		return nil, false
	}
	return e.Ifs.At(ex.Payload), true
}

// Match returns the match payload if id is a match expression.
func (e *Exprs) Match(id ExprID) (*ExprMatchData, bool) {
	ex := e.Get(id)
	if ex.Kind != ExprMatch {
		return nil, false
	}
	return e.Matches.At(ex.Payload), true
}

// Loop returns the loop payload if id is a loop expression.
func (e *Exprs) Loop(id ExprID) (*ExprLoopData, bool) {
	ex := e.Get(id)
	if ex.Kind != ExprLoop {
		return nil, false
	}
	return e.Loops.At(ex.Payload), true
}

// While returns the while payload if id is a while expression.
func (e *Exprs) While(id ExprID) (*ExprWhileData, bool) {
	ex := e.Get(id)
	if ex.Kind != ExprWhile {
		return nil, false
	}
	return e.Whiles.At(ex.Payload), true
}

// For returns the for payload if id is a for expression.
func (e *Exprs) For(id ExprID) (*ExprForData, bool) {
	ex := e.Get(id)
	if ex.Kind != ExprFor {
		return nil, false
	}
	return e.Fors.At(ex.Payload), true
}

// Return returns the return payload if id is a return expression.
func (e *Exprs) Return(id ExprID) (*ExprReturnData, bool) {
	ex := e.Get(id)
	if ex.Kind != ExprReturn {
		return nil, false
	}
	return e.Returns.At(ex.Payload), true
}

// Break returns the break payload if id is a break expression.
func (e *Exprs) Break(id ExprID) (*ExprBreakData, bool) {
	ex := e.Get(id)
	if ex.Kind != ExprBreak {
		return nil, false
	}
	return e.Breaks.At(ex.Payload), true
}

// Binary returns the binary payload if id is a binary operation.
func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	ex := e.Get(id)
	if ex.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.At(ex.Payload), true
}

// Assign returns the assignment payload if id is an assignment.
func (e *Exprs) Assign(id ExprID) (*ExprAssignData, bool) {
	ex := e.Get(id)
	if ex.Kind != ExprAssign {
		return nil, false
	}
	return e.Assigns.At(ex.Payload), true
}

// Pipeline returns the pipeline payload if id is a pipeline.
func (e *Exprs) Pipeline(id ExprID) (*ExprPipelineData, bool) {
	ex := e.Get(id)
	if ex.Kind != ExprPipeline {
		return nil, false
	}
	return e.Pipelines.At(ex.Payload), true
}

// Cast returns the cast payload if id is a cast.
func (e *Exprs) Cast(id ExprID) (*ExprCastData, bool) {
	ex := e.Get(id)
	if ex.Kind != ExprCast {
		return nil, false
	}
	return e.Casts.At(ex.Payload), true
}

// Unary returns the unary payload if id is a unary operation.
func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	ex := e.Get(id)
	if ex.Kind != ExprUnary {
		return nil, false
	}
	return e.Unaries.At(ex.Payload), true
}

// Call returns the call payload if id is a call.
func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	ex := e.Get(id)
	if ex.Kind != ExprCall {
		return nil, false
	}
	return e.Calls.At(ex.Payload), true
}

// Member returns the member payload if id is a member access.
func (e *Exprs) Member(id ExprID) (*ExprMemberData, bool) {
	ex := e.Get(id)
	if ex.Kind != ExprMember {
		return nil, false
	}
	return e.Members.At(ex.Payload), true
}

// Index returns the index payload if id is an index access.
func (e *Exprs) Index(id ExprID) (*ExprIndexData, bool) {
	ex := e.Get(id)
	if ex.Kind != ExprIndex {
		return nil, false
	}
	return e.Indices.At(ex.Payload), true
}
