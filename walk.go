package main

import (
	"fmt"
	"go/ast"
	"strings"
	"unicode/utf8"
)

// DocItem is one documentable declaration found during traversal: a function
// declaration or a package clause. The set is closed; rendering dispatches on
// the concrete type.
type DocItem interface {
	docItem()
}

// FuncDoc is the documentation attached to a single function or method
// declaration.
type FuncDoc struct {
	Signature string
	Doc       string
}

// PackageDoc is the documentation attached to a file's package clause.
type PackageDoc struct {
	Ident string
	Doc   string
}

func (FuncDoc) docItem()    {}
func (PackageDoc) docItem() {}

// DocCollection holds the items of one traversal in visit order.
type DocCollection []DocItem

// collectDocs walks a parsed file depth-first in pre-order and returns its
// documentable items: the package clause first, then every function and
// method declaration in source order. Undocumented declarations are still
// collected; they render with an empty body.
func collectDocs(file *ast.File) DocCollection {
	w := &docWalker{}
	ast.Inspect(file, w.visit)
	return w.items
}

type docWalker struct {
	items DocCollection
}

func (w *docWalker) visit(node ast.Node) bool {
	switch n := node.(type) {
	case *ast.File:
		w.items = append(w.items, PackageDoc{
			Ident: n.Name.Name,
			Doc:   flattenDoc(n.Doc),
		})
	case *ast.FuncDecl:
		w.items = append(w.items, FuncDoc{
			Signature: signatureLabel(n),
			Doc:       flattenDoc(n.Doc),
		})
	}
	return true
}

// signatureLabel renders the short display form of a function declaration.
//
// TODO: include receiver, parameters, results, and type parameters.
func signatureLabel(decl *ast.FuncDecl) string {
	return fmt.Sprintf("func %s()", decl.Name.Name)
}

// flattenDoc turns an attached comment group into raw documentation text, one
// line per comment, in source order. Only comments the parser associated with
// the declaration arrive here, which is exactly the set of doc comments.
//
// Each comment loses its two-character opening marker plus one character
// assumed to be the conventional space after it; block comments also lose the
// closing marker. A comment written without that space therefore loses its
// first real character. The walker tests pin this down; keep them in sync
// when touching the stripping.
func flattenDoc(group *ast.CommentGroup) string {
	if group == nil {
		return ""
	}
	var doc strings.Builder
	for _, comment := range group.List {
		text := comment.Text
		block := strings.HasPrefix(text, "/*")
		text = text[2:]
		if text != "" {
			_, size := utf8.DecodeRuneInString(text)
			text = text[size:]
		}
		if block && strings.HasSuffix(text, "*/") {
			text = text[:len(text)-2]
		}
		doc.WriteString(text)
		doc.WriteByte('\n')
	}
	return doc.String()
}
