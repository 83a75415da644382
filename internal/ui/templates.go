package ui

// Page templates are inlined and parsed once at startup; the demo ships as a
// single binary with no template directory to mount.

const dashboardTemplate = `<!DOCTYPE html>
<html>
<head>
    <title>Docker Compose Demo</title>
    <style>
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            margin: 0;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
            color: white;
        }
        .container {
            max-width: 1200px;
            margin: 0 auto;
            padding: 20px;
        }
        .header {
            text-align: center;
            padding: 40px 0;
        }
        .services {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(300px, 1fr));
            gap: 20px;
            margin: 30px 0;
        }
        .service-card {
            background: rgba(255,255,255,0.1);
            padding: 20px;
            border-radius: 15px;
            backdrop-filter: blur(10px);
            border: 1px solid rgba(255,255,255,0.2);
        }
        .status-badge {
            display: inline-block;
            padding: 5px 10px;
            border-radius: 20px;
            font-size: 12px;
            font-weight: bold;
        }
        .status-healthy { background: #4caf50; }
        .status-error { background: #f44336; }
        .metrics {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
            gap: 15px;
            margin: 20px 0;
        }
        .metric {
            background: rgba(255,255,255,0.2);
            padding: 15px;
            border-radius: 10px;
            text-align: center;
        }
        .metric-value {
            font-size: 24px;
            font-weight: bold;
            color: #ffd700;
        }
        .logs {
            background: rgba(0,0,0,0.3);
            padding: 15px;
            border-radius: 10px;
            font-family: 'Courier New', monospace;
            font-size: 12px;
            max-height: 200px;
            overflow-y: auto;
            white-space: pre-wrap;
        }
        button {
            background: #2196f3;
            color: white;
            border: none;
            padding: 10px 20px;
            border-radius: 5px;
            cursor: pointer;
            margin: 5px;
        }
        button:hover { background: #1976d2; }
        .refresh { text-align: center; margin: 20px 0; }
    </style>
    <script>
        function refreshData() {
            location.reload();
        }

        function testDatabase() {
            fetch('/api/test-db')
                .then(response => response.json())
                .then(data => alert(JSON.stringify(data, null, 2)));
        }

        function testCache() {
            fetch('/api/test-cache')
                .then(response => response.json())
                .then(data => alert(JSON.stringify(data, null, 2)));
        }

        // Auto-refresh every 30 seconds
        setInterval(refreshData, 30000);
    </script>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🐳 Docker Compose Multi-Container Demo</h1>
            <p>Full-stack application with Go, PostgreSQL, Redis, and Nginx</p>
        </div>

        <div class="services">
            <div class="service-card">
                <h3>🌐 Web Application</h3>
                <div class="status-badge status-healthy">RUNNING</div>
                <p><strong>Container:</strong> {{.Hostname}}</p>
                <p><strong>Environment:</strong> {{.Environment}}</p>
                <p><strong>Version:</strong> {{.Version}}</p>
                <p><strong>Uptime:</strong> {{.Uptime}}</p>
            </div>

            <div class="service-card">
                <h3>🗄️ PostgreSQL Database</h3>
                <div class="status-badge {{.DBStatusClass}}">{{.DBStatus}}</div>
                <p><strong>Host:</strong> {{.DBHost}}</p>
                <p><strong>Database:</strong> {{.DBName}}</p>
                <p><strong>Tables:</strong> {{.TableCount}}</p>
                <button onclick="testDatabase()">Test Connection</button>
            </div>

            <div class="service-card">
                <h3>⚡ Redis Cache</h3>
                <div class="status-badge {{.RedisStatusClass}}">{{.RedisStatus}}</div>
                <p><strong>Host:</strong> {{.RedisHost}}</p>
                <p><strong>Memory Usage:</strong> {{.RedisMemory}}</p>
                <p><strong>Keys:</strong> {{.RedisKeys}}</p>
                <button onclick="testCache()">Test Cache</button>
            </div>
        </div>

        <div class="metrics">
            <div class="metric">
                <div class="metric-value">{{.TotalRequests}}</div>
                <div>Total Requests</div>
            </div>
            <div class="metric">
                <div class="metric-value">{{.DBConnections}}</div>
                <div>DB Connections</div>
            </div>
            <div class="metric">
                <div class="metric-value">{{.CacheHits}}</div>
                <div>Cache Hits</div>
            </div>
            <div class="metric">
                <div class="metric-value">{{.ResponseTime}}</div>
                <div>Response Time</div>
            </div>
        </div>

        <div class="service-card">
            <h3>📊 System Information</h3>
            <div class="logs">{{.SystemInfo}}</div>
        </div>

        <div class="refresh">
            <button onclick="refreshData()">🔄 Refresh Data</button>
            <p><small>Last updated: {{.Timestamp}}</small></p>
        </div>
    </div>
</body>
</html>
`

const sysinfoTemplate = `<!DOCTYPE html>
<html>
<head>
    <title>Docker Optimization Demo</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; }
        .container { background: rgba(255,255,255,0.1); padding: 30px; border-radius: 15px; backdrop-filter: blur(10px); }
        .info-card { background: rgba(255,255,255,0.2); padding: 20px; margin: 15px 0; border-radius: 10px; }
        h1 { text-align: center; margin-bottom: 30px; }
        .metric { display: inline-block; margin: 10px; padding: 10px; background: rgba(255,255,255,0.3); border-radius: 5px; }
    </style>
</head>
<body>
    <div class="container">
        <h1>🐳 Docker Image Optimization Demo</h1>
        <div class="info-card">
            <h3>System Information</h3>
            <div class="metric"><strong>Memory Usage:</strong> {{.MemoryMB}} MB</div>
            <div class="metric"><strong>CPU Count:</strong> {{.CPUCount}}</div>
            <div class="metric"><strong>Go Version:</strong> {{.GoVersion}}</div>
            <div class="metric"><strong>Container ID:</strong> {{.Hostname}}</div>
            <div class="metric"><strong>Requests Served:</strong> {{.RequestsServed}}</div>
            <div class="metric"><strong>Timestamp:</strong> {{.Timestamp}}</div>
        </div>
        <div class="info-card">
            <h3>Environment Variables</h3>
            <p><strong>Environment:</strong> {{.Environment}}</p>
            <p><strong>Debug Mode:</strong> {{.Debug}}</p>
            <p><strong>Version:</strong> {{.Version}}</p>
        </div>
        <div class="info-card">
            <h3>Image Optimization Tips</h3>
            <ul>
                <li>Use multi-stage builds to keep the final image small</li>
                <li>Build static binaries and start from scratch or distroless</li>
                <li>Minimize the number of layers</li>
                <li>Use .dockerignore to exclude unnecessary files</li>
                <li>Run as non-root user for security</li>
            </ul>
        </div>
    </div>
</body>
</html>
`
