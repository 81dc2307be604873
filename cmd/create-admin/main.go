// Command create-admin creates a new admin user, or promotes an existing
// account to admin, directly against the database. Meant as a one-off
// bootstrap tool; the API itself never toggles the admin flag.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"frutti-market/models"
	"frutti-market/utils"

	"github.com/joho/godotenv"
	"golang.org/x/term"
)

func prompt(reader *bufio.Reader, label string) string {
	fmt.Printf("%s: ", label)
	value, _ := reader.ReadString('\n')
	return strings.TrimSpace(value)
}

func promptPassword(label string) string {
	fmt.Printf("%s: ", label)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		log.Fatal("Failed to read password:", err)
	}
	return string(raw)
}

func main() {
	_ = godotenv.Load()

	models.InitDB()
	defer models.CloseDB()

	reader := bufio.NewReader(os.Stdin)
	name := prompt(reader, "Nombre")
	surname := prompt(reader, "Apellidos")
	email := strings.ToLower(prompt(reader, "Email"))
	phone := prompt(reader, "Teléfono")
	password := promptPassword("Contraseña")

	if len(password) < 6 {
		log.Fatal("Password must be at least 6 characters")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	ctx := context.Background()

	var userID int
	err = models.DB.QueryRow(ctx, "SELECT id FROM users WHERE email=$1", email).Scan(&userID)
	if err == nil {
		_, err = models.DB.Exec(ctx,
			"UPDATE users SET nombre=$1, apellidos=$2, telefono=$3, password_hash=$4, is_admin=TRUE WHERE id=$5",
			name, surname, phone, hash, userID)
		if err != nil {
			log.Fatal("Failed to update user:", err)
		}
		fmt.Printf("Existing user promoted to admin (id=%d)\n", userID)
		return
	}

	err = models.DB.QueryRow(ctx,
		"INSERT INTO users (nombre, apellidos, email, telefono, password_hash, is_admin) VALUES ($1,$2,$3,$4,$5,TRUE) RETURNING id",
		name, surname, email, phone, hash).Scan(&userID)
	if err != nil {
		log.Fatal("Failed to create admin user:", err)
	}
	fmt.Printf("Admin user created (id=%d)\n", userID)
}
