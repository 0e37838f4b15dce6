// Package fuzztests houses Go fuzz harnesses for the snippet pipeline
// (source -> markup scanner -> detector -> fixer). They guard against panics,
// hangs and span corruption on arbitrary input.
//
// Назначение: прогонять произвольные байты через сканер, детектор и фиксер и
// проверять инварианты спанов из internal/testkit.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
