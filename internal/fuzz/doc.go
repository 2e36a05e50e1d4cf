// Package fuzztests houses Go fuzz harnesses for the luna front-end
// (source -> lexer -> parser). They check that arbitrary bytes never panic or
// hang the parser, and that every tree prints back to its input.
//
// Назначение: загружать байты в FileSet и прогонять их через лексер/парсер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/parser, internal/diag,
// internal/testkit.

package fuzztests
