// Package magic precomputes the geometry and magic-bitboard lookup tables
// that move generation, attack detection and evaluation are built on:
// per-square rays, leaper stencils, blocker masks, magic multiplier tables
// for bishops/rooks, and the king-safety/doubled-pawn/passed-pawn masks
// the evaluator consumes.
//
// All tables are computed once at package initialization and are read-only
// thereafter, so a single instance may be shared across concurrent search
// instances (spec.md §5).
package magic

import (
	"github.com/chooklii/rustyrook/bitboard"
	"github.com/chooklii/rustyrook/piece"
)

// File/rank bitmask constants used throughout ray tracing.
const (
	NotAFile  bitboard.Board = 0xFEFEFEFEFEFEFEFE
	NotHFile  bitboard.Board = 0x7F7F7F7F7F7F7F7F
	NotABFile bitboard.Board = 0xFCFCFCFCFCFCFCFC
	NotGHFile bitboard.Board = 0x3F3F3F3F3F3F3F3F
	NotRank1  bitboard.Board = 0xFFFFFFFFFFFFFF00
	NotRank8  bitboard.Board = 0x00FFFFFFFFFFFFFF
	Rank1     bitboard.Board = 0xFF
	Rank2     bitboard.Board = 0xFF00
	Rank4     bitboard.Board = 0xFF000000
	Rank5     bitboard.Board = 0xFF00000000
	Rank7     bitboard.Board = 0xFF000000000000
	Rank8     bitboard.Board = 0xFF00000000000000
)

// Leaper attack tables, indexed by square and (for pawns) color.
var (
	PawnAttacks   = initPawnAttacks()
	KnightAttacks = initKnightAttacks()
	KingAttacks   = initKingAttacksTable()
)

// PawnShield[color][kingSquare] is the set of up-to-3 squares directly in
// front of a king standing on kingSquare, used for the king-safety term.
var PawnShield = initKingSafety()

// FileMask[file] is every square on the given file (0=a..7=h); used for
// the doubled-pawn tariff.
var FileMask [8]bitboard.Board

// PassedPawnMask[color][square] is the set of opponent-pawn squares that
// could stop a friendly pawn on square from promoting: the pawn's file and
// the two adjacent files, from its current rank to the promotion rank.
var PassedPawnMask [2][64]bitboard.Board

func init() {
	initPawnStructureMasks()
}

// genPawnAttacks returns the squares attacked by pawns of color c standing
// on any square set in pawns.
func genPawnAttacks(pawns bitboard.Board, c piece.Color) bitboard.Board {
	if c == piece.White {
		return (pawns&NotAFile)<<7 | (pawns&NotHFile)<<9
	}
	return (pawns&NotAFile)>>9 | (pawns&NotHFile)>>7
}

func genKnightAttacks(knights bitboard.Board) bitboard.Board {
	return (knights&NotAFile)>>17 |
		(knights&NotHFile)>>15 |
		(knights&NotABFile)>>10 |
		(knights&NotGHFile)>>6 |
		(knights&NotABFile)<<6 |
		(knights&NotGHFile)<<10 |
		(knights&NotAFile)<<15 |
		(knights&NotHFile)<<17
}

func genKingAttacks(king bitboard.Board) bitboard.Board {
	return (king&NotAFile)>>9 |
		king>>8 |
		(king&NotHFile)>>7 |
		(king&NotAFile)>>1 |
		(king&NotHFile)<<1 |
		(king&NotAFile)<<7 |
		king<<8 |
		(king&NotHFile)<<9
}

// traceRay traces a slider's attack set in one of 8 directions,
// stopping at (and including) the first blocker.
//
// shift/mask pairs are supplied per-direction by the caller; shift > 0
// means a left shift, shift < 0 a right shift.
func traceRay(from bitboard.Board, fileMask bitboard.Board, shift int, occupancy bitboard.Board) (attacks bitboard.Board) {
	sq := from
	for {
		if shift > 0 {
			sq = (sq & fileMask) << uint(shift)
		} else {
			sq = (sq & fileMask) >> uint(-shift)
		}
		if sq == 0 {
			return attacks
		}
		attacks |= sq
		if sq&occupancy != 0 {
			return attacks
		}
	}
}

// genBishopAttacks returns the bishop attack set from a single origin
// square, including the first blocker in each direction (if any).
func genBishopAttacks(bishop, occupancy bitboard.Board) bitboard.Board {
	return traceRay(bishop, NotAFile, -9, occupancy) |
		traceRay(bishop, NotHFile, -7, occupancy) |
		traceRay(bishop, NotAFile, 7, occupancy) |
		traceRay(bishop, NotHFile, 9, occupancy)
}

// genRookAttacks returns the rook attack set from a single origin square,
// including the first blocker in each direction (if any).
func genRookAttacks(rook, occupancy bitboard.Board) bitboard.Board {
	return traceRay(rook, NotAFile, -1, occupancy) |
		traceRay(rook, NotHFile, 1, occupancy) |
		traceRay(rook, NotRank1, -8, occupancy) |
		traceRay(rook, NotRank8, 8, occupancy)
}

// genBishopOccupancy returns the bishop's "relevant occupancy" mask: the
// diagonal squares excluding the board edge, since an edge blocker never
// changes the attack set.
func genBishopOccupancy(bishop bitboard.Board) bitboard.Board {
	notANot1 := NotAFile & NotRank1
	notHNot1 := NotHFile & NotRank1
	notANot8 := NotAFile & NotRank8
	notHNot8 := NotHFile & NotRank8

	var occ bitboard.Board
	occ |= traceRayExcludingEdge(bishop, NotAFile, -9, notANot1)
	occ |= traceRayExcludingEdge(bishop, NotHFile, -7, notHNot1)
	occ |= traceRayExcludingEdge(bishop, NotAFile, 7, notANot8)
	occ |= traceRayExcludingEdge(bishop, NotHFile, 9, notHNot8)
	return occ
}

// genRookOccupancy returns the rook's "relevant occupancy" mask: its file
// and rank excluding the board edge.
func genRookOccupancy(rook bitboard.Board) bitboard.Board {
	var occ bitboard.Board
	occ |= traceRayExcludingEdge(rook, NotRank1, -8, NotRank1)
	occ |= traceRayExcludingEdge(rook, NotAFile, -1, NotAFile)
	occ |= traceRayExcludingEdge(rook, NotHFile, 1, NotHFile)
	occ |= traceRayExcludingEdge(rook, NotRank8, 8, NotRank8)
	return occ
}

// traceRayExcludingEdge is traceRay specialised for occupancy-mask
// construction: it never includes the edge square the ray stops at.
func traceRayExcludingEdge(from, fileMask bitboard.Board, shift int, stopMask bitboard.Board) (occ bitboard.Board) {
	sq := from
	for {
		if shift > 0 {
			sq = (sq & fileMask) << uint(shift)
		} else {
			sq = (sq & fileMask) >> uint(-shift)
		}
		if sq == 0 || sq&stopMask == 0 {
			return occ
		}
		occ |= sq
	}
}

func initPawnAttacks() [2][64]bitboard.Board {
	var attacks [2][64]bitboard.Board
	for sq := 0; sq < 64; sq++ {
		bit := bitboard.Board(1) << uint(sq)
		attacks[piece.White][sq] = genPawnAttacks(bit, piece.White)
		attacks[piece.Black][sq] = genPawnAttacks(bit, piece.Black)
	}
	return attacks
}

func initKnightAttacks() [64]bitboard.Board {
	var attacks [64]bitboard.Board
	for sq := 0; sq < 64; sq++ {
		attacks[sq] = genKnightAttacks(bitboard.Board(1) << uint(sq))
	}
	return attacks
}

func initKingAttacksTable() [64]bitboard.Board {
	var attacks [64]bitboard.Board
	for sq := 0; sq < 64; sq++ {
		attacks[sq] = genKingAttacks(bitboard.Board(1) << uint(sq))
	}
	return attacks
}

// initKingSafety builds, for every square, the up-to-3 squares directly in
// front of a king standing there — the pawn shield the evaluator checks for
// occupancy by a friendly pawn.
func initKingSafety() [2][64]bitboard.Board {
	var shield [2][64]bitboard.Board
	for sq := 0; sq < 64; sq++ {
		bit := bitboard.Board(1) << uint(sq)
		shield[piece.White][sq] = (bit&NotAFile)<<7 | bit<<8 | (bit&NotHFile)<<9
		shield[piece.Black][sq] = (bit&NotAFile)>>9 | bit>>8 | (bit&NotHFile)>>7
	}
	return shield
}

func initPawnStructureMasks() {
	for f := 0; f < 8; f++ {
		var m bitboard.Board
		for r := 0; r < 8; r++ {
			m |= bitboard.Board(1) << uint(r*8+f)
		}
		FileMask[f] = m
	}

	adjacent := func(f int) bitboard.Board {
		m := FileMask[f]
		if f > 0 {
			m |= FileMask[f-1]
		}
		if f < 7 {
			m |= FileMask[f+1]
		}
		return m
	}

	for sq := 0; sq < 64; sq++ {
		f := piece.File(sq)
		r := piece.Rank(sq)
		cols := adjacent(f)

		var white, black bitboard.Board
		for rr := r + 1; rr < 8; rr++ {
			for ff := 0; ff < 8; ff++ {
				s := rr*8 + ff
				if cols&(bitboard.Board(1)<<uint(s)) != 0 {
					white |= bitboard.Board(1) << uint(s)
				}
			}
		}
		for rr := r - 1; rr >= 0; rr-- {
			for ff := 0; ff < 8; ff++ {
				s := rr*8 + ff
				if cols&(bitboard.Board(1)<<uint(s)) != 0 {
					black |= bitboard.Board(1) << uint(s)
				}
			}
		}
		PassedPawnMask[piece.White][sq] = white
		PassedPawnMask[piece.Black][sq] = black
	}
}
