// Package fuzztests houses Go fuzz harnesses for the minify pipeline
// (source -> lexer -> parser -> compress -> format). They guard against
// panics and hangs on arbitrary input and check that optimized output
// still parses.
//
// Назначение: прогонять байты через весь конвейер минификации.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
