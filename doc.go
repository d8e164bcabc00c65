/* Package siew implements the Siew scripting language: a single-pass
bytecode compiler and a stack-based virtual machine.

A source string is compiled directly into a linear bytecode stream with an
attached constant pool, then executed by a register-less stack machine over
tagged values (nil, booleans, IEEE-754 doubles, and heap-allocated interned
strings). There is no AST: the Pratt parser in compiler.go emits bytecode
from within its parse rules.

The pipeline is

	source text -> Scanner -> token stream -> compiler -> Chunk -> VM

where a Chunk is one compiled unit (code, a parallel line table, and the
constant pool) and the VM owns the value stack, the heap object list, and
the string intern table.

The language currently evaluates a single top-level expression and prints
its result. Statements, variables, control flow and functions are not here
yet, but the bytecode format and the runtime leave room for them.

Embedders construct a VM with New, feed it programs with Interpret (or
Compile plus InterpretChunk to hold on to the bytecode), and release its
heap with Close. The cmd/siew binary wraps exactly that surface in a file
runner and a REPL.
*/
package siew
