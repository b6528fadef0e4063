package integration_test

const (
	TestUserId       = 1
	TestUserEmail    = "test@example.com"
	TestOtherUserId  = 2
	TestStaffUserId  = 99
	TestStaffEmail   = "staff@example.com"
	TestPerformance  = 1
	TestSmallHallId  = 2
	TestSmallShowId  = 2
	TestUnusedHallId = 3
)
