// cmd/gentoken/main.go — Firma un custom token de prueba para un uid.
// Uso: JWT_SECRET=... go run ./cmd/gentoken -uid <id> -email <correo>
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/adaptador"
)

func main() {
	uid := flag.String("uid", "", "id del usuario")
	email := flag.String("email", "", "correo a incluir como claim")
	horas := flag.Int("horas", 8, "horas de validez")
	flag.Parse()

	if *uid == "" {
		log.Fatal("falta -uid")
	}
	secreto := os.Getenv("JWT_SECRET")
	if secreto == "" {
		log.Fatal("falta JWT_SECRET")
	}

	auth := adaptador.NewAutenticacionJWT(secreto, time.Duration(*horas)*time.Hour)
	token, err := auth.EmitirToken(context.Background(), *uid, map[string]any{"email": *email})
	if err != nil {
		log.Fatalf("emitir token: %v", err)
	}
	fmt.Println(token)
}
