package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"hr-chatbot-be/internal/constant"
	"hr-chatbot-be/internal/entity"
	"hr-chatbot-be/internal/repository/implementation"
	"hr-chatbot-be/internal/service"
	"hr-chatbot-be/pkg/jsonstore"
)

const demoPolicyText = `Chính sách nghỉ phép: Mỗi nhân viên có 20 ngày nghỉ phép năm. Đơn xin nghỉ cần gửi trước ít nhất 3 ngày làm việc.

Chính sách làm việc từ xa: Nhân viên được làm việc từ xa tối đa 2 ngày mỗi tuần sau khi được quản lý trực tiếp phê duyệt.

Chính sách nghỉ ốm: Nghỉ ốm từ 3 ngày trở lên cần giấy xác nhận của cơ sở y tế. Nghỉ ốm không trừ vào ngày phép năm.

Chính sách làm thêm giờ: Làm thêm giờ được tính 150% lương ngày thường, 200% vào ngày nghỉ cuối tuần và 300% vào ngày lễ.`

var demoPolicies = []entity.Policy{
	{
		Title:       "Nghỉ phép năm",
		Description: "Mỗi nhân viên có 20 ngày nghỉ phép năm. Đơn xin nghỉ cần gửi trước ít nhất 3 ngày làm việc.",
		Color:       "blue",
	},
	{
		Title:       "Làm việc từ xa",
		Description: "Nhân viên được làm việc từ xa tối đa 2 ngày mỗi tuần sau khi được quản lý trực tiếp phê duyệt.",
		Color:       "green",
	},
	{
		Title:       "Nghỉ ốm",
		Description: "Nghỉ ốm từ 3 ngày trở lên cần giấy xác nhận của cơ sở y tế. Nghỉ ốm không trừ vào ngày phép năm.",
		Color:       "orange",
	},
	{
		Title:       "Làm thêm giờ",
		Description: "Làm thêm giờ được tính 150% lương ngày thường, 200% cuối tuần và 300% ngày lễ.",
		Color:       "purple",
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}

	store, err := jsonstore.New(dataDir)
	if err != nil {
		color.Red("Failed to open data directory: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()
	color.Cyan("🚀 Seeding demo HR data into %s\n", dataDir)

	color.Yellow("\n1. Employee profile")
	employeeRepo := implementation.NewEmployeeRepository(store)
	employeeService := service.NewEmployeeService(employeeRepo)
	seeded, err := employeeService.Seed(ctx)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Seeded %s (%s, %s)", seeded.Employee.Name, seeded.Employee.Position, seeded.Employee.Department)

	color.Yellow("\n2. Company policies")
	policies := make([]entity.Policy, 0, len(demoPolicies))
	for _, p := range demoPolicies {
		p.Id = uuid.NewString()
		policies = append(policies, p)
	}
	if err := store.Write(implementation.DocPolicies, policies); err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Wrote %d policies", len(policies))

	color.Yellow("\n3. Policy text")
	if err := os.WriteFile(store.Path(implementation.DocPolicyText), []byte(demoPolicyText), 0644); err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Wrote %s", implementation.DocPolicyText)

	color.Yellow("\n4. Chat history")
	messageRepo := implementation.NewMessageRepository(store)
	welcome := []entity.Message{{
		Id:        uuid.NewString(),
		Role:      entity.MessageRoleAssistant,
		Content:   constant.WelcomeMessage,
		Timestamp: time.Now(),
	}}
	if err := messageRepo.ReplaceAll(ctx, welcome); err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Reset chat history to welcome message")

	color.Yellow("\n5. Leave cases")
	if err := store.Write(implementation.DocLeaveCases, []entity.LeaveCase{}); err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Cleared leave cases")

	color.Cyan("\n✅ Done")
}
