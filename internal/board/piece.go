package board

// Color represents the color of a piece or player.
type Color uint8

const (
	NoColor Color = 0
	White   Color = 8
	Black   Color = 16
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// PieceType represents the type of a chess piece.
type PieceType uint8

const (
	NoPieceType PieceType = 0
	King        PieceType = 1
	Pawn        PieceType = 2
	Knight      PieceType = 3
	Bishop      PieceType = 5
	Rook        PieceType = 6
	Queen       PieceType = 7
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Char returns the FEN character for the piece type (lowercase).
func (pt PieceType) Char() byte {
	switch pt {
	case Pawn:
		return 'p'
	case Knight:
		return 'n'
	case Bishop:
		return 'b'
	case Rook:
		return 'r'
	case Queen:
		return 'q'
	case King:
		return 'k'
	default:
		return ' '
	}
}

// Piece is the code stored per square in a Snapshot.
// Encoded as: pieceType | color. Zero means the square is empty.
type Piece uint8

const (
	typeMask  = 0b00111
	colorMask = 0b11000
)

// NoPiece marks an empty square.
const NoPiece Piece = 0

const (
	WhitePawn   = Piece(Pawn) | Piece(White)
	WhiteKnight = Piece(Knight) | Piece(White)
	WhiteBishop = Piece(Bishop) | Piece(White)
	WhiteRook   = Piece(Rook) | Piece(White)
	WhiteQueen  = Piece(Queen) | Piece(White)
	WhiteKing   = Piece(King) | Piece(White)
	BlackPawn   = Piece(Pawn) | Piece(Black)
	BlackKnight = Piece(Knight) | Piece(Black)
	BlackBishop = Piece(Bishop) | Piece(Black)
	BlackRook   = Piece(Rook) | Piece(Black)
	BlackQueen  = Piece(Queen) | Piece(Black)
	BlackKing   = Piece(King) | Piece(Black)
)

// AllPieces lists every non-empty piece code.
var AllPieces = []Piece{
	WhitePawn, WhiteKnight, WhiteBishop, WhiteRook, WhiteQueen, WhiteKing,
	BlackPawn, BlackKnight, BlackBishop, BlackRook, BlackQueen, BlackKing,
}

// NewPiece creates a Piece from PieceType and Color.
func NewPiece(pt PieceType, c Color) Piece {
	if pt == NoPieceType || (c != White && c != Black) {
		return NoPiece
	}
	return Piece(pt) | Piece(c)
}

// Type returns the PieceType of the piece.
func (p Piece) Type() PieceType {
	return PieceType(p & typeMask)
}

// Color returns the Color of the piece.
func (p Piece) Color() Color {
	return Color(p & colorMask)
}

// IsEmpty returns true for the empty-square code.
func (p Piece) IsEmpty() bool {
	return p.Type() == NoPieceType
}

// String returns the FEN character for the piece.
// Uppercase for white, lowercase for black.
func (p Piece) String() string {
	if p.IsEmpty() {
		return " "
	}
	ch := p.Type().Char()
	if p.Color() == White {
		ch -= 'a' - 'A'
	}
	return string(ch)
}

// PieceFromChar converts a FEN character to a Piece.
func PieceFromChar(c byte) Piece {
	color := Black
	if c >= 'A' && c <= 'Z' {
		color = White
		c += 'a' - 'A'
	}
	switch c {
	case 'p':
		return NewPiece(Pawn, color)
	case 'n':
		return NewPiece(Knight, color)
	case 'b':
		return NewPiece(Bishop, color)
	case 'r':
		return NewPiece(Rook, color)
	case 'q':
		return NewPiece(Queen, color)
	case 'k':
		return NewPiece(King, color)
	default:
		return NoPiece
	}
}
