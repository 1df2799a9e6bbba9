package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"usertaskapi/internal/models"
	"usertaskapi/internal/repository"
	"usertaskapi/internal/utils"
)

// TaskServiceTestSuite defines the test suite for TaskService
type TaskServiceTestSuite struct {
	suite.Suite
	db          *gorm.DB
	service     *TaskService
	userService *UserService
	ctx         context.Context
}

// SetupTest runs before each test
func (suite *TaskServiceTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.User{}, &models.Task{})
	suite.Require().NoError(err)

	suite.service = NewTaskService(repository.NewTaskRepository(suite.db))
	suite.userService = NewUserService(repository.NewUserRepository(suite.db))
	suite.ctx = context.Background()
}

// TearDownTest runs after each test
func (suite *TaskServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TaskServiceTestSuite) createTestUser(email string) *models.User {
	user, err := suite.userService.CreateUser(suite.ctx, CreateUserInput{Name: "Test User", Email: email})
	suite.Require().NoError(err)
	return user
}

func (suite *TaskServiceTestSuite) TestCreateTask_Success() {
	user := suite.createTestUser("alice@example.com")

	task, err := suite.service.CreateTask(suite.ctx, CreateTaskInput{
		Title:  "Buy milk",
		Text:   "2%",
		UserID: user.ID,
	})

	assert.NoError(suite.T(), err)
	assert.NotZero(suite.T(), task.ID)
	assert.False(suite.T(), task.CreatedAt.IsZero())
	assert.Nil(suite.T(), task.UpdatedAt)
}

func (suite *TaskServiceTestSuite) TestCreateTask_TitleRequired() {
	user := suite.createTestUser("alice@example.com")

	_, err := suite.service.CreateTask(suite.ctx, CreateTaskInput{UserID: user.ID})
	assert.ErrorIs(suite.T(), err, ErrTitleRequired)
}

func (suite *TaskServiceTestSuite) TestCreateTask_UnknownOwner() {
	_, err := suite.service.CreateTask(suite.ctx, CreateTaskInput{
		Title:  "Orphan",
		UserID: 999,
	})

	assert.ErrorIs(suite.T(), err, ErrUserNotFound)

	var count int64
	suite.db.Model(&models.Task{}).Count(&count)
	assert.EqualValues(suite.T(), 0, count)
}

func (suite *TaskServiceTestSuite) TestGetTask_NotFound() {
	_, err := suite.service.GetTask(suite.ctx, 42)
	assert.ErrorIs(suite.T(), err, ErrTaskNotFound)
}

func (suite *TaskServiceTestSuite) TestUpdateTask_EmptyTitleRejected() {
	user := suite.createTestUser("alice@example.com")
	task, err := suite.service.CreateTask(suite.ctx, CreateTaskInput{Title: "Buy milk", UserID: user.ID})
	suite.Require().NoError(err)

	empty := ""
	_, err = suite.service.UpdateTask(suite.ctx, task.ID, UpdateTaskInput{Title: &empty})
	assert.ErrorIs(suite.T(), err, ErrTitleEmpty)

	// Current value untouched
	found, err := suite.service.GetTask(suite.ctx, task.ID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Buy milk", found.Title)
	assert.Nil(suite.T(), found.UpdatedAt)
}

func (suite *TaskServiceTestSuite) TestUpdateTask_Partial() {
	user := suite.createTestUser("alice@example.com")
	task, err := suite.service.CreateTask(suite.ctx, CreateTaskInput{Title: "Buy milk", Text: "2%", UserID: user.ID})
	suite.Require().NoError(err)

	text := "Whole"
	updated, err := suite.service.UpdateTask(suite.ctx, task.ID, UpdateTaskInput{Text: &text})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Buy milk", updated.Title)
	assert.Equal(suite.T(), "Whole", updated.Text)
	assert.NotNil(suite.T(), updated.UpdatedAt)
}

func (suite *TaskServiceTestSuite) TestUpdateTask_NotFound() {
	title := "whatever"
	_, err := suite.service.UpdateTask(suite.ctx, 42, UpdateTaskInput{Title: &title})
	assert.ErrorIs(suite.T(), err, ErrTaskNotFound)
}

func (suite *TaskServiceTestSuite) TestDeleteTask_SnapshotThenNotFound() {
	user := suite.createTestUser("alice@example.com")
	task, err := suite.service.CreateTask(suite.ctx, CreateTaskInput{Title: "Buy milk", UserID: user.ID})
	suite.Require().NoError(err)

	snapshot, err := suite.service.DeleteTask(suite.ctx, task.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), task.ID, snapshot.ID)

	_, err = suite.service.GetTask(suite.ctx, task.ID)
	assert.ErrorIs(suite.T(), err, ErrTaskNotFound)

	_, err = suite.service.DeleteTask(suite.ctx, task.ID)
	assert.ErrorIs(suite.T(), err, ErrTaskNotFound)
}

func (suite *TaskServiceTestSuite) TestListTasks_NoOwnerFilter() {
	alice := suite.createTestUser("alice@example.com")
	bob := suite.createTestUser("bob@example.com")
	_, err := suite.service.CreateTask(suite.ctx, CreateTaskInput{Title: "a", UserID: alice.ID})
	suite.Require().NoError(err)
	_, err = suite.service.CreateTask(suite.ctx, CreateTaskInput{Title: "b", UserID: bob.ID})
	suite.Require().NoError(err)

	tasks, total, err := suite.service.ListTasks(suite.ctx, utils.PaginationParams{})
	assert.NoError(suite.T(), err)
	assert.EqualValues(suite.T(), 2, total)
	assert.Len(suite.T(), tasks, 2)
}

func (suite *TaskServiceTestSuite) TestListTasksByUser_UnknownOwner() {
	_, _, err := suite.service.ListTasksByUser(suite.ctx, 999, utils.PaginationParams{})
	assert.ErrorIs(suite.T(), err, ErrUserNotFound)
}

func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
