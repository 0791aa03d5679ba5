// hashpass genera el hash bcrypt para ADMIN_PASSWORD_HASH.
//
// Uso: go run ./cmd/hashpass <password>
// Imprime el hash por stdout, listo para pegar en la configuración.
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) != 2 || os.Args[1] == "" {
		fmt.Fprintln(os.Stderr, "uso: hashpass <password>")
		os.Exit(2)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generar hash: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(hash))
}
