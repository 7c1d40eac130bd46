package main

func main() {
	SetupTestCmd()
	SetupExtractCmd()
	SetupServeCmd()
	Execute()
}
