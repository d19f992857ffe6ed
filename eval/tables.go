package eval

// Piece-square tables are written a1..h8 (rank 1 first) from White's point
// of view; Black's score looks up the vertically mirrored square (sq^56:
// rank flipped, file unchanged).

var pawnTableCenter = [64]float32{
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0,
	0.8, 0.8, 1.0, 1.1, 1.1, 1.0, 0.8, 0.8,
	0.9, 0.8, 1.1, 1.3, 1.3, 1.1, 0.8, 0.9,
	1.0, 1.0, 1.1, 1.3, 1.3, 1.1, 1.0, 1.0,
	1.0, 1.0, 1.1, 1.2, 1.2, 1.1, 1.0, 1.0,
	2.0, 2.0, 2.0, 2.0, 2.0, 2.0, 2.0, 2.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
}

var pawnTableQueenside = [64]float32{
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0,
	0.7, 0.7, 0.7, 1.1, 1.1, 1.1, 1.1, 1.1,
	0.7, 0.7, 0.7, 1.3, 1.3, 1.3, 1.3, 1.3,
	1.0, 1.0, 1.2, 1.3, 1.3, 1.3, 1.3, 1.3,
	1.0, 1.0, 1.1, 1.1, 1.1, 1.3, 1.3, 1.3,
	2.0, 2.0, 2.0, 2.0, 2.0, 2.0, 2.5, 2.5,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
}

var pawnTableKingside = [64]float32{
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0,
	1.1, 1.1, 1.1, 1.1, 1.1, 0.7, 0.7, 0.7,
	1.3, 1.3, 1.3, 1.3, 1.3, 0.7, 0.7, 0.7,
	1.3, 1.3, 1.3, 1.3, 1.3, 1.2, 1.0, 1.0,
	1.3, 1.3, 1.3, 1.1, 1.1, 1.1, 1.0, 1.0,
	2.0, 2.0, 2.0, 2.0, 2.0, 2.0, 2.0, 2.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
}

var knightTable = [64]float32{
	1.8, 2.9, 2.0, 2.0, 2.0, 2.0, 2.9, 1.8,
	2.0, 3.0, 3.0, 3.0, 3.0, 3.0, 3.0, 2.0,
	2.0, 3.1, 3.1, 3.1, 3.1, 3.1, 3.1, 2.0,
	2.0, 3.0, 3.2, 3.2, 3.2, 3.2, 3.0, 2.0,
	2.0, 3.0, 3.2, 3.2, 3.2, 3.2, 3.0, 2.0,
	2.0, 3.2, 3.2, 3.2, 3.2, 3.2, 3.2, 2.0,
	2.0, 3.0, 3.0, 3.0, 3.0, 3.0, 3.0, 2.0,
	1.8, 2.0, 2.0, 2.0, 2.0, 2.0, 2.0, 1.8,
}

var bishopTable = [64]float32{
	3.0, 3.0, 3.0, 3.0, 3.0, 3.0, 3.0, 3.0,
	3.0, 3.1, 3.0, 3.0, 3.0, 3.0, 3.1, 3.0,
	3.0, 3.0, 3.1, 3.0, 3.0, 3.1, 3.0, 3.0,
	3.0, 3.0, 3.0, 3.1, 3.1, 3.0, 3.0, 3.0,
	3.0, 3.0, 3.0, 3.1, 3.1, 3.0, 3.0, 3.0,
	3.0, 3.0, 3.1, 3.0, 3.0, 3.1, 3.0, 3.0,
	3.0, 3.1, 3.0, 3.0, 3.0, 3.0, 3.1, 3.0,
	3.0, 3.0, 3.0, 3.0, 3.0, 3.0, 3.0, 3.0,
}

var rookTable = [64]float32{
	4.95, 5.0, 5.05, 5.1, 5.1, 5.05, 5.0, 4.95,
	5.0, 5.0, 5.0, 5.0, 5.0, 5.0, 5.0, 5.0,
	5.0, 5.0, 5.0, 5.0, 5.0, 5.0, 5.0, 5.0,
	5.0, 5.0, 5.0, 5.0, 5.0, 5.0, 5.0, 5.0,
	5.0, 5.0, 5.0, 5.0, 5.0, 5.0, 5.0, 5.0,
	5.0, 5.0, 5.0, 5.0, 5.0, 5.0, 5.0, 5.0,
	5.0, 5.0, 5.0, 5.0, 5.0, 5.0, 5.0, 5.0,
	5.0, 5.0, 5.0, 5.0, 5.0, 5.0, 5.0, 5.0,
}

var queenTable = [64]float32{
	8.7, 8.8, 9.0, 9.0, 9.0, 9.0, 8.8, 8.7,
	8.8, 9.0, 9.1, 9.1, 9.1, 9.1, 9.0, 8.8,
	8.9, 9.0, 9.1, 9.1, 9.1, 9.1, 9.0, 8.9,
	8.9, 9.0, 9.1, 9.1, 9.1, 9.1, 9.0, 8.9,
	8.9, 9.0, 9.1, 9.1, 9.1, 9.1, 9.0, 8.9,
	8.9, 9.0, 9.1, 9.1, 9.1, 9.1, 9.0, 8.9,
	8.8, 9.0, 9.1, 9.1, 9.1, 9.1, 9.0, 8.8,
	8.7, 8.8, 9.0, 9.0, 9.0, 9.0, 8.8, 8.7,
}

var kingTableEarly = [64]float32{
	1.2, 1.3, 1.3, 1.0, 1.0, 1.1, 1.3, 1.2,
	0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5,
	0.3, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3,
	0.3, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3,
	0.3, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3,
	0.3, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3,
	0.3, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3,
	0.3, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3,
}

var kingTableLate = [64]float32{
	1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0,
	1.0, 1.1, 1.1, 1.1, 1.1, 1.1, 1.1, 1.0,
	1.0, 1.1, 1.3, 1.3, 1.3, 1.3, 1.1, 1.0,
	1.0, 1.1, 1.3, 1.5, 1.5, 1.3, 1.1, 1.0,
	1.0, 1.1, 1.3, 1.5, 1.5, 1.3, 1.1, 1.0,
	1.0, 1.1, 1.3, 1.3, 1.3, 1.3, 1.1, 1.0,
	1.0, 1.1, 1.1, 1.1, 1.1, 1.1, 1.1, 1.0,
	1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0,
}

// pieceWeight is indexed by piece.Type (Pawn..Queen); King is never
// materialized.
var pieceWeight = [5]float32{1.0, 3.0, 3.2, 5.0, 9.0}
