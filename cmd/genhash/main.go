// genhash imprime el hash bcrypt de una contraseña para AUTH_ADMIN_PASSWORD_HASH
// y AUTH_OPERATOR_PASSWORD_HASH.
//
// Uso: go run ./cmd/genhash <contraseña>
// Sin argumento lee la contraseña de la primera línea de stdin.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	password, err := readPassword(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "genhash:", err)
		os.Exit(1)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintln(os.Stderr, "genhash: bcrypt:", err)
		os.Exit(1)
	}
	fmt.Println(string(hash))
}

func readPassword(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("leer stdin: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", fmt.Errorf("contraseña vacía")
	}
	return line, nil
}
