package jsub

// TokType is a category type for a Token, i.e. a terminal kind of the grammar.
type TokType int

// Terminal kinds. NoToken is the zero value and will never be produced by
// the scanner.
const (
	NoToken TokType = iota

	// keywords and punctuation words
	Public    // public
	Class     // class
	Static    // static
	Void      // void
	Main      // main
	StringArr // String[]
	Args      // args
	Type      // int | char | boolean
	Print     // System.out.println
	While     // while
	For       // for
	If        // if
	Else      // else
	True      // true
	False     // false

	// delimiters
	DQuote    // "
	SQuote    // '
	LBrace    // {
	RBrace    // }
	LParen    // (
	RParen    // )
	Semicolon // ;

	// operators
	Assign    // =
	Plus      // +
	Minus     // -
	Times     // *
	Divide    // /
	Mod       // %
	Equal     // ==
	NotEqual  // !=
	Less      // <
	Greater   // >
	LessEq    // <=
	GreaterEq // >=
	And       // &&
	Or        // ||

	// classes of lexemes
	Ident     // identifier
	Num       // integer literal
	StringLit // contents of a string literal
	CharLit   // contents of a char literal

	maxTokType
)

// MaxTokType is one larger than the largest terminal kind. Tables indexed
// by terminal kind may use it as their width.
const MaxTokType = int(maxTokType)

var tokTypeNames = [...]string{
	NoToken:   "<none>",
	Public:    "PUBLIC",
	Class:     "CLASS",
	Static:    "STATIC",
	Void:      "VOID",
	Main:      "MAIN",
	StringArr: "STRINGARR",
	Args:      "ARGS",
	Type:      "TYPE",
	Print:     "PRINT",
	While:     "WHILE",
	For:       "FOR",
	If:        "IF",
	Else:      "ELSE",
	True:      "TRUE",
	False:     "FALSE",
	DQuote:    "DQUOTE",
	SQuote:    "SQUOTE",
	LBrace:    "LBRACE",
	RBrace:    "RBRACE",
	LParen:    "LPAREN",
	RParen:    "RPAREN",
	Semicolon: "SEMICOLON",
	Assign:    "ASSIGN",
	Plus:      "PLUS",
	Minus:     "MINUS",
	Times:     "TIMES",
	Divide:    "DIVIDE",
	Mod:       "MOD",
	Equal:     "EQUAL",
	NotEqual:  "NEQUAL",
	Less:      "LT",
	Greater:   "GT",
	LessEq:    "LE",
	GreaterEq: "GE",
	And:       "AND",
	Or:        "OR",
	Ident:     "ID",
	Num:       "NUM",
	StringLit: "STRINGLIT",
	CharLit:   "CHARLIT",
}

func (tt TokType) String() string {
	if tt < 0 || tt >= maxTokType {
		return "<illegal>"
	}
	return tokTypeNames[tt]
}

// IsLiteral is true for terminal kinds whose lexeme varies from token to token.
func (tt TokType) IsLiteral() bool {
	return tt == Ident || tt == Num || tt == StringLit || tt == CharLit || tt == Type
}

// Keywords maps the fixed lexemes of the language to their terminal kinds.
// It contains keywords, punctuation words and operators, including the
// multi-character ones.
//
// Keywords must be treated as read-only.
var Keywords = map[string]TokType{
	"public":             Public,
	"class":              Class,
	"static":             Static,
	"void":               Void,
	"main":               Main,
	"String[]":           StringArr,
	"args":               Args,
	"int":                Type,
	"char":               Type,
	"boolean":            Type,
	"System.out.println": Print,
	"while":              While,
	"for":                For,
	"if":                 If,
	"else":               Else,
	"true":               True,
	"false":              False,
	"{":                  LBrace,
	"}":                  RBrace,
	"(":                  LParen,
	")":                  RParen,
	";":                  Semicolon,
	"=":                  Assign,
	"+":                  Plus,
	"-":                  Minus,
	"*":                  Times,
	"/":                  Divide,
	"%":                  Mod,
	"==":                 Equal,
	"!=":                 NotEqual,
	"<":                  Less,
	">":                  Greater,
	"<=":                 LessEq,
	">=":                 GreaterEq,
	"&&":                 And,
	"||":                 Or,
}

// Lexeme returns a canonical lexeme for a terminal kind, e.g. "==" for Equal.
// For kinds without a fixed lexeme (identifiers, numbers, literal contents)
// it returns the empty string; for Type it returns "int".
func (tt TokType) Lexeme() string {
	switch tt {
	case Type:
		return "int"
	case DQuote:
		return `"`
	case SQuote:
		return "'"
	}
	for lexeme, kind := range Keywords {
		if kind == tt {
			return lexeme
		}
	}
	return ""
}
