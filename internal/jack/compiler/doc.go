// Package compiler drives the Jack front end over source files.
//
// A Compiler owns the scope table and a session ID. Init starts a
// session, CompileUnit checks one file and CompileDir checks every source
// file of a directory in lexical order, stopping at the first unit that
// reports a fault. Stop ends the session.
//
// Faults in the Jack source are returned as parser.Result values; the
// error return is reserved for tool faults such as unreadable files.
package compiler
