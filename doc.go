// Package protocst is the root of a lossless concrete syntax tree for
// protobuf source files. It has no code of its own; the work is done by
// its sub-packages, which follow the order in which a file is processed:
//  1. Tokenize the file, attaching every comment to a token.
//     Also see: lexer.Tokenize, lexer.TokenizeFiles
//  2. Assemble the tokens into a tree whose nodes own them.
//     Also see: ast.NewFileNode and the other node constructors
//  3. Walk or search the tree.
//     Also see: walk.Nodes, walk.NewIndex
//  4. Generate the source code info of a file descriptor.
//     Also see: sourceinfo.GenerateSourceInfo
//
// Printing every terminal of a tree, with its whitespace and comments,
// reproduces the source exactly. Also see: ast.Print
//
// Errors found along the way carry source positions and are sent to a
// reporter.Handler, which decides whether processing continues.
//
// The protocst command in cmd/protocst exposes the tokenizer from the
// command line.
package protocst
