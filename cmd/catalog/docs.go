package main

// @title Product Catalog API
// @version 1.0
// @description Read-only product catalog with filtering, detail lookup and statistics (logging, tracing, metrics)

// @contact.name API Support
// @contact.url http://www.swagger.io/support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8081
// @BasePath /
