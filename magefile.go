//go:build mage

package main

import (
	"fmt"
	"os/exec"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target to run when no target is specified
var Default = Test

// Test runs the full unit and integration suite: lexer, ASI engine, parser
// and AST packages, plus the end-to-end scenarios under test/integration.
func Test() error {
	fmt.Println("🚀 Running xjs-core test suite")
	fmt.Println("===============================")

	mg.SerialDeps(TestUnit, TestIntegration)

	fmt.Println()
	fmt.Println("⚡ Running benchmarks...")
	if err := sh.RunV("go", "test", "-run=^$", "-bench=.", "-benchmem", "./..."); err != nil {
		fmt.Println("⚠️  Some benchmarks failed, but continuing...")
	}

	fmt.Println()
	fmt.Println("🎉 All tests completed successfully!")
	return nil
}

// TestUnit runs the package-local unit tests (lexer, token, asi, ast, parser).
func TestUnit() error {
	fmt.Println("🧪 Running unit tests...")
	return sh.RunV("go", "test", "-v", "./asi/...", "./ast/...", "./lexer/...", "./token/...", "./parser/...")
}

// TestIntegration runs the end-to-end scenarios in test/integration, which
// drive the parser package exactly as the xjsparse CLI does.
func TestIntegration() error {
	fmt.Println("🔗 Running integration tests...")
	return sh.RunV("go", "test", "-v", "./test/integration/...")
}

// TestAll runs every test package in the module.
func TestAll() error {
	fmt.Println("🧪 Running all project tests...")
	return sh.RunV("go", "test", "-v", "./...")
}

// Bench runs every benchmark in the module.
func Bench() error {
	fmt.Println("⚡ Running benchmarks...")
	return sh.RunV("go", "test", "-run=^$", "-bench=.", "-benchmem", "./...")
}

// Build compiles the xjsparse CLI.
func Build() error {
	fmt.Println("🔨 Building xjsparse...")
	return sh.RunV("go", "build", "-o", "bin/xjsparse", "./cmd/xjsparse")
}

// Clean limpia archivos generados
func Clean() error {
	fmt.Println("🧹 Cleaning generated files...")
	return sh.Rm("bin")
}

// Install instala dependencias
func Install() error {
	fmt.Println("📦 Installing dependencies...")
	return sh.RunV("go", "mod", "download")
}

// Tidy limpia y organiza go.mod
func Tidy() error {
	fmt.Println("🔧 Tidying go.mod...")
	return sh.RunV("go", "mod", "tidy")
}

// Lint ejecuta linting (si tienes golangci-lint instalado)
func Lint() error {
	fmt.Println("🔍 Running linter...")
	if !commandExists("golangci-lint") {
		fmt.Println("⚠️  golangci-lint not found, skipping...")
		return nil
	}
	return sh.RunV("golangci-lint", "run")
}

// Dev ejecuta tests en modo watch (requiere watchexec)
func Dev() error {
	fmt.Println("🚀 Starting development mode...")
	if !commandExists("watchexec") {
		fmt.Println("ℹ️  Install watchexec for auto-testing: brew install watchexec")
		return fmt.Errorf("watchexec not found")
	}
	return sh.RunV("watchexec", "-e", "go", "-i", "bin/", "--", "mage", "test")
}

// Release prepara una release completa
func Release() error {
	fmt.Println("🚢 Preparing release...")
	mg.SerialDeps(Clean, Install, Tidy, Lint, TestAll, Build)
	fmt.Println("🎉 Release ready!")
	return nil
}

// CI ejecuta pipeline de integración continua
func CI() error {
	fmt.Println("🔄 Running CI pipeline...")
	mg.SerialDeps(Install, Lint, TestAll)
	return nil
}

// commandExists verifica si un comando existe en el PATH
func commandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}
