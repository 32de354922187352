package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/d60-Lab/social-blog/config"
	"github.com/d60-Lab/social-blog/internal/model"
	"github.com/d60-Lab/social-blog/internal/repository"
	"github.com/d60-Lab/social-blog/internal/service"
	"github.com/d60-Lab/social-blog/pkg/database"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func envInt(key string, def int) int {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return def
}

// 本地压测 / 联调用数据：N 个用户，随机关注、发帖、点赞、评论。
// 所有账号密码均为 password1。
func main() {
	cfg := must(config.Load())
	db := must(database.InitDB(cfg))
	check(database.AutoMigrate(db))

	users := envInt("USERS", 100)
	postsPerUser := envInt("POSTS", 5)
	followsPerUser := envInt("FOLLOWS", 10)
	likesPerUser := envInt("LIKES", 20)

	postRepo := repository.NewPostRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	followRepo := repository.NewFollowRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	relSvc := service.NewRelationshipService(likeRepo, followRepo)

	ctx := context.Background()

	// 同一个哈希复用，避免 N 次 bcrypt 拖慢种子
	hash := string(must(bcrypt.GenerateFromPassword([]byte("password1"), bcrypt.MinCost)))

	seeded := make([]model.User, users)
	for i := range seeded {
		seeded[i] = model.User{
			UserID:   uuid.New().String(),
			Name:     fmt.Sprintf("user%04d", i),
			Email:    fmt.Sprintf("user%04d@example.com", i),
			Password: hash,
		}
	}
	check(db.CreateInBatches(&seeded, 500).Error)

	var postIDs []string
	for _, u := range seeded {
		for n := 0; n < postsPerUser; n++ {
			post := &model.Post{
				PostID:  uuid.New().String(),
				UserID:  u.UserID,
				Title:   fmt.Sprintf("post by %s #%d", u.Name, rand.Intn(10000)),
				Content: "seeded content",
			}
			check(postRepo.Create(ctx, post))
			postIDs = append(postIDs, post.PostID)
		}
	}

	for _, u := range seeded {
		for n := 0; n < followsPerUser; n++ {
			target := seeded[rand.Intn(len(seeded))]
			if target.UserID == u.UserID {
				continue
			}
			must(relSvc.Follow(ctx, u.UserID, target.UserID))
		}
		for n := 0; n < likesPerUser; n++ {
			must(relSvc.Like(ctx, u.UserID, postIDs[rand.Intn(len(postIDs))]))
		}
		check(commentRepo.Create(ctx, &model.Comment{
			CommentID: uuid.New().String(),
			PostID:    postIDs[rand.Intn(len(postIDs))],
			UserID:    u.UserID,
			Content:   "seeded comment",
		}))
	}

	fmt.Printf("seeded %d users, %d posts\n", len(seeded), len(postIDs))
}
