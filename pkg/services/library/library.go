package library

type Library interface {
	Node() Node
	Chain() Chain
	State() State
	Txn() Txn
	Mining() Mining
	Filter() Filter
	Compiler() Compile
}
