// Command ctiscore is the single entry point for indexing, searching,
// boolean-AND retrieval, evaluation, and document lookup over the LA
// Times newswire corpus. Argument parsing/validation, path-existence
// checks, and the interactive REPL are deliberately kept in this command
// layer, outside the ctiscore package, per the library/CLI split this
// corpus draws between core retrieval logic and its outer shell.
package main

func main() {
	Execute()
}
