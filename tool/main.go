package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/alecthomas/participle"

	. "github.com/dave/jennifer/jen"
)

// SumDecls is a list of closed sum types:
//
//	sum Statement = Read | Write | Assign;
type SumDecls struct {
	Declarations []*Declaration `@@*`
}

type Declaration struct {
	Name     string   `"sum" @Ident "="`
	Variants []string `@Ident ("|" @Ident)* ";"`
}

// GenerateDecls renders one marker interface per sum, and the marker method
// on a pointer to each of its variants.
func GenerateDecls(pkgname, source string, t *SumDecls) string {
	f := NewFile(pkgname)
	f.HeaderComment(fmt.Sprintf("Code generated by tool from %s. DO NOT EDIT.", source))

	for _, decl := range t.Declarations {
		marker := "is_" + decl.Name

		f.Type().Id(decl.Name).Interface(
			Id(marker).Params(),
		)
		for _, variant := range decl.Variants {
			f.Func().Params(Op("*").Id(variant)).Id(marker).Params().Block()
		}
	}

	return fmt.Sprintf("%#v", f)
}

func main() {
	parser := participle.MustBuild(&SumDecls{})

	in := os.Args[1]
	out := os.Args[2]
	pkgname := os.Args[3]

	inData, err := ioutil.ReadFile(in)
	if err != nil {
		panic(err)
	}

	ast := SumDecls{}
	err = parser.ParseBytes(inData, &ast)
	if err != nil {
		panic(err)
	}

	err = ioutil.WriteFile(out, []byte(GenerateDecls(pkgname, filepath.Base(in), &ast)), 0644)
	if err != nil {
		panic(err)
	}
}
