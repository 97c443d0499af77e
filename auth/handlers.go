package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"earlobe/db"
	"earlobe/globals"
	"earlobe/middleware"
	"earlobe/models"
	"earlobe/rdx"
	"earlobe/utils"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 12 * time.Hour

func loginHandler(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	var storedUser models.User
	err := db.UserCollection.FindOne(context.TODO(), bson.M{"username": user.Username}).Decode(&storedUser)
	if err != nil {
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedUser.Password), []byte(user.Password)); err != nil {
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}

	claims := &middleware.Claims{
		Username: storedUser.Username,
		UserID:   storedUser.UserID,
		Role:     storedUser.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(globals.JwtSecret)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	_, err = db.UserCollection.UpdateOne(
		context.TODO(),
		bson.M{"userid": storedUser.UserID},
		bson.M{"$set": bson.M{"last_login": time.Now()}},
	)
	if err != nil {
		log.Printf("Failed to record last login for %s: %v", storedUser.UserID, err)
	}

	if err := rdx.RdxHset("sessions", storedUser.UserID, tokenString); err != nil {
		log.Printf("Redis token storage failed: %v", err)
	}

	utils.SendResponse(w, http.StatusOK, map[string]string{
		"token":  tokenString,
		"userid": storedUser.UserID,
	}, "Login successful", nil)
}

func registerHandler(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if user.Username == "" || user.Password == "" {
		http.Error(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	var existingUser models.User
	err := db.UserCollection.FindOne(context.TODO(), bson.M{"username": user.Username}).Decode(&existingUser)
	if err == nil {
		http.Error(w, "User already exists", http.StatusConflict)
		return
	} else if err != mongo.ErrNoDocuments {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash password for user %s: %v", user.Username, err)
		http.Error(w, "Failed to hash password", http.StatusInternalServerError)
		return
	}
	user.Password = string(hashedPassword)
	user.UserID = "u" + utils.GenerateID(10)
	user.Role = []string{"user"}
	user.CreatedAt = time.Now()

	if _, err := db.UserCollection.InsertOne(context.TODO(), user); err != nil {
		http.Error(w, "Failed to register user", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{
		"status":  http.StatusCreated,
		"message": "User registered",
		"userid":  user.UserID,
	})
}

func logoutHandler(w http.ResponseWriter, r *http.Request) {
	tokenString := r.Header.Get("Authorization")
	claims, err := middleware.ValidateJWT(tokenString)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	if _, err := rdx.RdxHdel("sessions", claims.UserID); err != nil {
		log.Printf("Error removing token from Redis: %v", err)
	}

	utils.SendResponse(w, http.StatusOK, nil, "User logged out successfully", nil)
}
