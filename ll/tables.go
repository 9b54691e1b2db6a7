package ll

import (
	"fmt"
	"io"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/jsub"
	"github.com/npillmayer/jsub/ll/sparse"
)

// Refer to "Crafting A Compiler" by Charles N. Fisher & Richard J. LeBlanc, Jr.
// Section 5.3 LL(1) Parse Tables

// TableGenerator is a generator object to construct LL(1) predict tables.
// Clients usually create a Grammar G, then an LLAnalysis-object for G,
// and then a table generator. TableGenerator.CreateTables() constructs
// the predict table for a top-down parser recognizing grammar G.
type TableGenerator struct {
	g            *Grammar
	ga           *LLAnalysis
	table        *Table
	conflicts    *treeset.Set // of Conflict, sorted by variable and lookahead
	HasConflicts bool
}

// Conflict describes a double entry in a predict table, i.e. a place where
// the grammar is not LL(1).
type Conflict struct {
	Var       Variable
	Lookahead jsub.TokType
	Rules     [2]int // serial numbers of the competing rules
}

func conflictComparator(c1, c2 interface{}) int {
	a, b := c1.(Conflict), c2.(Conflict)
	if cmp := utils.IntComparator(int(a.Var), int(b.Var)); cmp != 0 {
		return cmp
	}
	return utils.IntComparator(int(a.Lookahead), int(b.Lookahead))
}

// NewTableGenerator creates a new TableGenerator for a (previously analysed) grammar.
func NewTableGenerator(ga *LLAnalysis) *TableGenerator {
	return &TableGenerator{
		g:         ga.Grammar(),
		ga:        ga,
		conflicts: treeset.NewWith(conflictComparator),
	}
}

// Table returns the predict table. The table has to be built by calling
// CreateTables() previously.
func (lgen *TableGenerator) Table() *Table {
	if lgen.table == nil {
		tracer().Errorf("predict table not yet initialized")
	}
	return lgen.table
}

// Conflicts returns all conflicts found during table construction.
func (lgen *TableGenerator) Conflicts() []Conflict {
	cs := make([]Conflict, 0, lgen.conflicts.Size())
	for _, x := range lgen.conflicts.Values() {
		cs = append(cs, x.(Conflict))
	}
	return cs
}

// CreateTables creates the predict table for an LL(1) parser.
//
// For every rule A → α we produce an entry (A, a) for each terminal a
// in FIRST(α). If α is nullable, we produce an entry (A, b) for each
// terminal b in FOLLOW(A).
//
// The table is stored as a sparse matrix, where every entry may consist of up
// to 2 values, thus recording conflicts. Entries are encoded as the serial
// number of the rule to expand.
func (lgen *TableGenerator) CreateTables() {
	tracer().Debugf("=== build predict table =========================================")
	rows := int(lgen.g.MaxVariable()) + 1
	tracer().Infof("predict table of size %d x %d", rows, jsub.MaxTokType)
	t := &Table{
		g:      lgen.g,
		matrix: sparse.NewIntMatrix(rows, jsub.MaxTokType, sparse.DefaultNullValue),
	}
	for _, r := range lgen.g.rules {
		F, nullable := lgen.ga.firstOfSequence(r.rhs)
		for _, la := range tokTypes(F) {
			lgen.addEntry(t, r, la)
		}
		if nullable {
			for _, la := range lgen.ga.Follow(r.LHS) {
				lgen.addEntry(t, r, la)
			}
		}
	}
	lgen.table = t
	lgen.HasConflicts = !lgen.conflicts.Empty()
	tracer().Infof("predict table has %d entries, %d conflicts", t.matrix.ValueCount(), lgen.conflicts.Size())
}

func (lgen *TableGenerator) addEntry(t *Table, r *Rule, la jsub.TokType) {
	row, col := int(r.LHS), int(la)
	if a := t.matrix.Value(row, col); a != t.matrix.NullValue() {
		if a == int32(r.Serial) {
			return
		}
		tracer().Infof("conflict at (%s,%s): rules %d and %d", lgen.g.VarName(r.LHS), la, a, r.Serial)
		lgen.conflicts.Add(Conflict{Var: r.LHS, Lookahead: la, Rules: [2]int{int(a), r.Serial}})
	}
	tracer().Debugf("M[%s,%s] = %s", lgen.g.VarName(r.LHS), la, lgen.g.RuleString(r))
	t.matrix.Add(row, col, int32(r.Serial))
}

// --- Predict table ---------------------------------------------------------

// Table is an LL(1) predict table, mapping pairs of (variable, lookahead)
// to rules. Tables are immutable after construction and safe for concurrent use.
type Table struct {
	g      *Grammar
	matrix *sparse.IntMatrix // rows: variables, columns: token kinds
}

// Grammar returns the grammar a table has been built for.
func (t *Table) Grammar() *Grammar {
	return t.g
}

// EntryCount returns the number of (variable, lookahead) pairs with an entry.
func (t *Table) EntryCount() int {
	return t.matrix.ValueCount()
}

// Rule returns the rule to expand for variable v, given lookahead la.
// If the table has no entry, Rule returns false. For a conflicting entry,
// the rule which has been entered first is returned.
func (t *Table) Rule(v Variable, la jsub.TokType) (*Rule, bool) {
	if v <= Epsilon || int(v) >= t.matrix.M() || la <= jsub.NoToken || int(la) >= t.matrix.N() {
		return nil, false
	}
	serial := t.matrix.Value(int(v), int(la))
	if serial == t.matrix.NullValue() {
		return nil, false
	}
	return t.g.Rule(int(serial)), true
}

// Production returns the RHS of the rule to expand for variable v, given
// lookahead la.
func (t *Table) Production(v Variable, la jsub.TokType) ([]Symbol, bool) {
	r, ok := t.Rule(v, la)
	if !ok {
		return nil, false
	}
	return r.RHS(), true
}

// Expected returns all lookaheads for which variable v has an entry,
// ordered by token kind.
func (t *Table) Expected(v Variable) []jsub.TokType {
	if v <= Epsilon || int(v) >= t.matrix.M() {
		return nil
	}
	var tts []jsub.TokType
	t.matrix.EachInRow(int(v), func(j int, a, b int32) {
		tts = append(tts, jsub.TokType(j))
	})
	return tts
}

// TableAsHTML exports a predict table in HTML-format. Columns are restricted
// to token kinds which occur in at least one entry.
func TableAsHTML(t *Table, w io.Writer) {
	if t == nil {
		tracer().Errorf("predict table not yet created, cannot export to HTML")
		return
	}
	used := make([]bool, jsub.MaxTokType)
	t.g.EachVariable(func(v Variable) {
		for _, la := range t.Expected(v) {
			used[la] = true
		}
	})
	io.WriteString(w, "<html><body>\n")
	io.WriteString(w, fmt.Sprintf("<p>%s: predict table with %d entries</p>\n", t.g.Name, t.EntryCount()))
	io.WriteString(w, "<table border=1 cellspacing=0 cellpadding=5>\n")
	io.WriteString(w, "<tr bgcolor=#cccccc><td></td>\n")
	for tt, ok := range used {
		if ok {
			io.WriteString(w, fmt.Sprintf("<td>%s</td>", jsub.TokType(tt)))
		}
	}
	io.WriteString(w, "</tr>\n")
	var td string // table cell
	t.g.EachVariable(func(v Variable) {
		io.WriteString(w, fmt.Sprintf("<tr><td>%s</td>\n", t.g.VarName(v)))
		for tt, ok := range used {
			if !ok {
				continue
			}
			v1, v2 := t.matrix.Values(int(v), tt)
			if v1 == t.matrix.NullValue() {
				td = "&nbsp;"
			} else if v2 == t.matrix.NullValue() {
				td = fmt.Sprintf("%d", v1)
			} else {
				td = fmt.Sprintf("%d/%d", v1, v2)
			}
			io.WriteString(w, "<td>")
			io.WriteString(w, td)
			io.WriteString(w, "</td>\n")
		}
		io.WriteString(w, "</tr>\n")
	})
	io.WriteString(w, "</table></body></html>\n")
}
